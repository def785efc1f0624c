package constants

import "strings"

// SlipType is one of the four paper-slip layouts the pipeline understands.
// The tag selects the conditioning profile, the recognition prompt, the
// parse strategy chain, and the correction rules.
type SlipType string

// Stable values (store these exact strings in DB).
const (
	// SlipTypeReceipt 受領証: acceptance receipt with a gross/tare/net
	// comparison table and a fixed issuer letterhead.
	SlipTypeReceipt SlipType = "受領証"
	// SlipTypeInspection 検量書: label/value rows, largely handwritten.
	SlipTypeInspection SlipType = "検量書"
	// SlipTypeWeighing 計量伝票: blue-background weighbridge slip with
	// コード1/コード2 rows.
	SlipTypeWeighing SlipType = "計量伝票"
	// SlipTypeTicket 計量票: weighbridge ticket with 現場/品名 labels.
	SlipTypeTicket SlipType = "計量票"
)

// AllSlipTypes lists every supported layout, in UI order.
var AllSlipTypes = []SlipType{
	SlipTypeReceipt,
	SlipTypeInspection,
	SlipTypeWeighing,
	SlipTypeTicket,
}

// ParseSlipType maps a wire string to a SlipType tag.
func ParseSlipType(s string) (SlipType, bool) {
	t := SlipType(strings.TrimSpace(s))
	for _, st := range AllSlipTypes {
		if t == st {
			return st, true
		}
	}
	return "", false
}

func (t SlipType) String() string { return string(t) }

// Valid reports whether t is one of the four known layouts.
func (t SlipType) Valid() bool {
	_, ok := ParseSlipType(string(t))
	return ok
}

// AllowedExtensions holds the image extensions accepted for capture uploads.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
