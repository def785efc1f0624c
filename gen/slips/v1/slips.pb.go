// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: slips/v1/slips.proto

package slipsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SlipFields struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Date           string                 `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"` // YYYY-MM-DD
	ClientName     string                 `protobuf:"bytes,2,opt,name=client_name,json=clientName,proto3" json:"client_name,omitempty"`
	ItemName       string                 `protobuf:"bytes,3,opt,name=item_name,json=itemName,proto3" json:"item_name,omitempty"`
	NetWeight      string                 `protobuf:"bytes,4,opt,name=net_weight,json=netWeight,proto3" json:"net_weight,omitempty"` // decimal string, kg
	ManifestNumber string                 `protobuf:"bytes,5,opt,name=manifest_number,json=manifestNumber,proto3" json:"manifest_number,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SlipFields) Reset() {
	*x = SlipFields{}
	mi := &file_slips_v1_slips_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SlipFields) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SlipFields) ProtoMessage() {}

func (x *SlipFields) ProtoReflect() protoreflect.Message {
	mi := &file_slips_v1_slips_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SlipFields.ProtoReflect.Descriptor instead.
func (*SlipFields) Descriptor() ([]byte, []int) {
	return file_slips_v1_slips_proto_rawDescGZIP(), []int{0}
}

func (x *SlipFields) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *SlipFields) GetClientName() string {
	if x != nil {
		return x.ClientName
	}
	return ""
}

func (x *SlipFields) GetItemName() string {
	if x != nil {
		return x.ItemName
	}
	return ""
}

func (x *SlipFields) GetNetWeight() string {
	if x != nil {
		return x.NetWeight
	}
	return ""
}

func (x *SlipFields) GetManifestNumber() string {
	if x != nil {
		return x.ManifestNumber
	}
	return ""
}

type FieldConfidence struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Level         string                 `protobuf:"bytes,1,opt,name=level,proto3" json:"level,omitempty"`  // good | default | missing
	Score         int32                  `protobuf:"varint,2,opt,name=score,proto3" json:"score,omitempty"` // 0..100
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldConfidence) Reset() {
	*x = FieldConfidence{}
	mi := &file_slips_v1_slips_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldConfidence) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldConfidence) ProtoMessage() {}

func (x *FieldConfidence) ProtoReflect() protoreflect.Message {
	mi := &file_slips_v1_slips_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldConfidence.ProtoReflect.Descriptor instead.
func (*FieldConfidence) Descriptor() ([]byte, []int) {
	return file_slips_v1_slips_proto_rawDescGZIP(), []int{1}
}

func (x *FieldConfidence) GetLevel() string {
	if x != nil {
		return x.Level
	}
	return ""
}

func (x *FieldConfidence) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

type QualityReport struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Width            int32                  `protobuf:"varint,1,opt,name=width,proto3" json:"width,omitempty"`
	Height           int32                  `protobuf:"varint,2,opt,name=height,proto3" json:"height,omitempty"`
	Brightness       float64                `protobuf:"fixed64,3,opt,name=brightness,proto3" json:"brightness,omitempty"`
	Contrast         float64                `protobuf:"fixed64,4,opt,name=contrast,proto3" json:"contrast,omitempty"`
	Score            int32                  `protobuf:"varint,5,opt,name=score,proto3" json:"score,omitempty"`
	Issues           []string               `protobuf:"bytes,6,rep,name=issues,proto3" json:"issues,omitempty"`
	NeedConditioning bool                   `protobuf:"varint,7,opt,name=need_conditioning,json=needConditioning,proto3" json:"need_conditioning,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *QualityReport) Reset() {
	*x = QualityReport{}
	mi := &file_slips_v1_slips_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QualityReport) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QualityReport) ProtoMessage() {}

func (x *QualityReport) ProtoReflect() protoreflect.Message {
	mi := &file_slips_v1_slips_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QualityReport.ProtoReflect.Descriptor instead.
func (*QualityReport) Descriptor() ([]byte, []int) {
	return file_slips_v1_slips_proto_rawDescGZIP(), []int{2}
}

func (x *QualityReport) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *QualityReport) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

func (x *QualityReport) GetBrightness() float64 {
	if x != nil {
		return x.Brightness
	}
	return 0
}

func (x *QualityReport) GetContrast() float64 {
	if x != nil {
		return x.Contrast
	}
	return 0
}

func (x *QualityReport) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *QualityReport) GetIssues() []string {
	if x != nil {
		return x.Issues
	}
	return nil
}

func (x *QualityReport) GetNeedConditioning() bool {
	if x != nil {
		return x.NeedConditioning
	}
	return false
}

type ProcessSlipRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Image         []byte                 `protobuf:"bytes,1,opt,name=image,proto3" json:"image,omitempty"`
	SlipType      string                 `protobuf:"bytes,2,opt,name=slip_type,json=slipType,proto3" json:"slip_type,omitempty"` // 受領証 | 検量書 | 計量伝票 | 計量票
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessSlipRequest) Reset() {
	*x = ProcessSlipRequest{}
	mi := &file_slips_v1_slips_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessSlipRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessSlipRequest) ProtoMessage() {}

func (x *ProcessSlipRequest) ProtoReflect() protoreflect.Message {
	mi := &file_slips_v1_slips_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessSlipRequest.ProtoReflect.Descriptor instead.
func (*ProcessSlipRequest) Descriptor() ([]byte, []int) {
	return file_slips_v1_slips_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessSlipRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *ProcessSlipRequest) GetSlipType() string {
	if x != nil {
		return x.SlipType
	}
	return ""
}

type ProcessSlipResponse struct {
	state         protoimpl.MessageState      `protogen:"open.v1"`
	Fields        *SlipFields                 `protobuf:"bytes,1,opt,name=fields,proto3" json:"fields,omitempty"`
	Confidence    map[string]*FieldConfidence `protobuf:"bytes,2,rep,name=confidence,proto3" json:"confidence,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Quality       *QualityReport              `protobuf:"bytes,3,opt,name=quality,proto3" json:"quality,omitempty"`
	RawText       string                      `protobuf:"bytes,4,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	Duplicate     bool                        `protobuf:"varint,5,opt,name=duplicate,proto3" json:"duplicate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessSlipResponse) Reset() {
	*x = ProcessSlipResponse{}
	mi := &file_slips_v1_slips_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessSlipResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessSlipResponse) ProtoMessage() {}

func (x *ProcessSlipResponse) ProtoReflect() protoreflect.Message {
	mi := &file_slips_v1_slips_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessSlipResponse.ProtoReflect.Descriptor instead.
func (*ProcessSlipResponse) Descriptor() ([]byte, []int) {
	return file_slips_v1_slips_proto_rawDescGZIP(), []int{4}
}

func (x *ProcessSlipResponse) GetFields() *SlipFields {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *ProcessSlipResponse) GetConfidence() map[string]*FieldConfidence {
	if x != nil {
		return x.Confidence
	}
	return nil
}

func (x *ProcessSlipResponse) GetQuality() *QualityReport {
	if x != nil {
		return x.Quality
	}
	return nil
}

func (x *ProcessSlipResponse) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *ProcessSlipResponse) GetDuplicate() bool {
	if x != nil {
		return x.Duplicate
	}
	return false
}

type CheckQualityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Image         []byte                 `protobuf:"bytes,1,opt,name=image,proto3" json:"image,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckQualityRequest) Reset() {
	*x = CheckQualityRequest{}
	mi := &file_slips_v1_slips_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckQualityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckQualityRequest) ProtoMessage() {}

func (x *CheckQualityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_slips_v1_slips_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckQualityRequest.ProtoReflect.Descriptor instead.
func (*CheckQualityRequest) Descriptor() ([]byte, []int) {
	return file_slips_v1_slips_proto_rawDescGZIP(), []int{5}
}

func (x *CheckQualityRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

type CheckQualityResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Quality       *QualityReport         `protobuf:"bytes,1,opt,name=quality,proto3" json:"quality,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckQualityResponse) Reset() {
	*x = CheckQualityResponse{}
	mi := &file_slips_v1_slips_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckQualityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckQualityResponse) ProtoMessage() {}

func (x *CheckQualityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_slips_v1_slips_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckQualityResponse.ProtoReflect.Descriptor instead.
func (*CheckQualityResponse) Descriptor() ([]byte, []int) {
	return file_slips_v1_slips_proto_rawDescGZIP(), []int{6}
}

func (x *CheckQualityResponse) GetQuality() *QualityReport {
	if x != nil {
		return x.Quality
	}
	return nil
}

type SubmitSlipRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SlipType      string                 `protobuf:"bytes,1,opt,name=slip_type,json=slipType,proto3" json:"slip_type,omitempty"`
	Fields        *SlipFields            `protobuf:"bytes,2,opt,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitSlipRequest) Reset() {
	*x = SubmitSlipRequest{}
	mi := &file_slips_v1_slips_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitSlipRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitSlipRequest) ProtoMessage() {}

func (x *SubmitSlipRequest) ProtoReflect() protoreflect.Message {
	mi := &file_slips_v1_slips_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitSlipRequest.ProtoReflect.Descriptor instead.
func (*SubmitSlipRequest) Descriptor() ([]byte, []int) {
	return file_slips_v1_slips_proto_rawDescGZIP(), []int{7}
}

func (x *SubmitSlipRequest) GetSlipType() string {
	if x != nil {
		return x.SlipType
	}
	return ""
}

func (x *SubmitSlipRequest) GetFields() *SlipFields {
	if x != nil {
		return x.Fields
	}
	return nil
}

type SubmitSlipResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Slip          *Slip                  `protobuf:"bytes,1,opt,name=slip,proto3" json:"slip,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitSlipResponse) Reset() {
	*x = SubmitSlipResponse{}
	mi := &file_slips_v1_slips_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitSlipResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitSlipResponse) ProtoMessage() {}

func (x *SubmitSlipResponse) ProtoReflect() protoreflect.Message {
	mi := &file_slips_v1_slips_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitSlipResponse.ProtoReflect.Descriptor instead.
func (*SubmitSlipResponse) Descriptor() ([]byte, []int) {
	return file_slips_v1_slips_proto_rawDescGZIP(), []int{8}
}

func (x *SubmitSlipResponse) GetSlip() *Slip {
	if x != nil {
		return x.Slip
	}
	return nil
}

type Slip struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SlipType       string                 `protobuf:"bytes,2,opt,name=slip_type,json=slipType,proto3" json:"slip_type,omitempty"`
	SlipDate       string                 `protobuf:"bytes,3,opt,name=slip_date,json=slipDate,proto3" json:"slip_date,omitempty"`
	ClientName     string                 `protobuf:"bytes,4,opt,name=client_name,json=clientName,proto3" json:"client_name,omitempty"`
	ItemName       string                 `protobuf:"bytes,5,opt,name=item_name,json=itemName,proto3" json:"item_name,omitempty"`
	NetWeight      string                 `protobuf:"bytes,6,opt,name=net_weight,json=netWeight,proto3" json:"net_weight,omitempty"`
	ManifestNumber string                 `protobuf:"bytes,7,opt,name=manifest_number,json=manifestNumber,proto3" json:"manifest_number,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Slip) Reset() {
	*x = Slip{}
	mi := &file_slips_v1_slips_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Slip) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Slip) ProtoMessage() {}

func (x *Slip) ProtoReflect() protoreflect.Message {
	mi := &file_slips_v1_slips_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Slip.ProtoReflect.Descriptor instead.
func (*Slip) Descriptor() ([]byte, []int) {
	return file_slips_v1_slips_proto_rawDescGZIP(), []int{9}
}

func (x *Slip) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Slip) GetSlipType() string {
	if x != nil {
		return x.SlipType
	}
	return ""
}

func (x *Slip) GetSlipDate() string {
	if x != nil {
		return x.SlipDate
	}
	return ""
}

func (x *Slip) GetClientName() string {
	if x != nil {
		return x.ClientName
	}
	return ""
}

func (x *Slip) GetItemName() string {
	if x != nil {
		return x.ItemName
	}
	return ""
}

func (x *Slip) GetNetWeight() string {
	if x != nil {
		return x.NetWeight
	}
	return ""
}

func (x *Slip) GetManifestNumber() string {
	if x != nil {
		return x.ManifestNumber
	}
	return ""
}

func (x *Slip) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Slip) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListSlipsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSlipsRequest) Reset() {
	*x = ListSlipsRequest{}
	mi := &file_slips_v1_slips_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSlipsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSlipsRequest) ProtoMessage() {}

func (x *ListSlipsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_slips_v1_slips_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSlipsRequest.ProtoReflect.Descriptor instead.
func (*ListSlipsRequest) Descriptor() ([]byte, []int) {
	return file_slips_v1_slips_proto_rawDescGZIP(), []int{10}
}

func (x *ListSlipsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListSlipsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListSlipsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Slips         []*Slip                `protobuf:"bytes,1,rep,name=slips,proto3" json:"slips,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSlipsResponse) Reset() {
	*x = ListSlipsResponse{}
	mi := &file_slips_v1_slips_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSlipsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSlipsResponse) ProtoMessage() {}

func (x *ListSlipsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_slips_v1_slips_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSlipsResponse.ProtoReflect.Descriptor instead.
func (*ListSlipsResponse) Descriptor() ([]byte, []int) {
	return file_slips_v1_slips_proto_rawDescGZIP(), []int{11}
}

func (x *ListSlipsResponse) GetSlips() []*Slip {
	if x != nil {
		return x.Slips
	}
	return nil
}

type ExportSlipsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportSlipsRequest) Reset() {
	*x = ExportSlipsRequest{}
	mi := &file_slips_v1_slips_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportSlipsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportSlipsRequest) ProtoMessage() {}

func (x *ExportSlipsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_slips_v1_slips_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportSlipsRequest.ProtoReflect.Descriptor instead.
func (*ExportSlipsRequest) Descriptor() ([]byte, []int) {
	return file_slips_v1_slips_proto_rawDescGZIP(), []int{12}
}

func (x *ExportSlipsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportSlipsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportSlipsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportSlipsResponse) Reset() {
	*x = ExportSlipsResponse{}
	mi := &file_slips_v1_slips_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportSlipsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportSlipsResponse) ProtoMessage() {}

func (x *ExportSlipsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_slips_v1_slips_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportSlipsResponse.ProtoReflect.Descriptor instead.
func (*ExportSlipsResponse) Descriptor() ([]byte, []int) {
	return file_slips_v1_slips_proto_rawDescGZIP(), []int{13}
}

func (x *ExportSlipsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportSlipsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_slips_v1_slips_proto protoreflect.FileDescriptor

const file_slips_v1_slips_proto_rawDesc = "" +
	"\n" +
	"\x14slips/v1/slips.proto\x12\bslips.v1\"\xa6\x01\n" +
	"\n" +
	"SlipFields\x12\x12\n" +
	"\x04date\x18\x01 \x01(\tR\x04date\x12\x1f\n" +
	"\vclient_name\x18\x02 \x01(\tR\n" +
	"clientName\x12\x1b\n" +
	"\titem_name\x18\x03 \x01(\tR\bitemName\x12\x1d\n" +
	"\n" +
	"net_weight\x18\x04 \x01(\tR\tnetWeight\x12'\n" +
	"\x0fmanifest_number\x18\x05 \x01(\tR\x0emanifestNumber\"=\n" +
	"\x0fFieldConfidence\x12\x14\n" +
	"\x05level\x18\x01 \x01(\tR\x05level\x12\x14\n" +
	"\x05score\x18\x02 \x01(\x05R\x05score\"\xd4\x01\n" +
	"\rQualityReport\x12\x14\n" +
	"\x05width\x18\x01 \x01(\x05R\x05width\x12\x16\n" +
	"\x06height\x18\x02 \x01(\x05R\x06height\x12\x1e\n" +
	"\n" +
	"brightness\x18\x03 \x01(\x01R\n" +
	"brightness\x12\x1a\n" +
	"\bcontrast\x18\x04 \x01(\x01R\bcontrast\x12\x14\n" +
	"\x05score\x18\x05 \x01(\x05R\x05score\x12\x16\n" +
	"\x06issues\x18\x06 \x03(\tR\x06issues\x12+\n" +
	"\x11need_conditioning\x18\a \x01(\bR\x10needConditioning\"G\n" +
	"\x12ProcessSlipRequest\x12\x14\n" +
	"\x05image\x18\x01 \x01(\fR\x05image\x12\x1b\n" +
	"\tslip_type\x18\x02 \x01(\tR\bslipType\"\xd8\x02\n" +
	"\x13ProcessSlipResponse\x12,\n" +
	"\x06fields\x18\x01 \x01(\v2\x14.slips.v1.SlipFieldsR\x06fields\x12M\n" +
	"\n" +
	"confidence\x18\x02 \x03(\v2-.slips.v1.ProcessSlipResponse.ConfidenceEntryR\n" +
	"confidence\x121\n" +
	"\aquality\x18\x03 \x01(\v2\x17.slips.v1.QualityReportR\aquality\x12\x19\n" +
	"\braw_text\x18\x04 \x01(\tR\arawText\x12\x1c\n" +
	"\tduplicate\x18\x05 \x01(\bR\tduplicate\x1aX\n" +
	"\x0fConfidenceEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12/\n" +
	"\x05value\x18\x02 \x01(\v2\x19.slips.v1.FieldConfidenceR\x05value:\x028\x01\"+\n" +
	"\x13CheckQualityRequest\x12\x14\n" +
	"\x05image\x18\x01 \x01(\fR\x05image\"I\n" +
	"\x14CheckQualityResponse\x121\n" +
	"\aquality\x18\x01 \x01(\v2\x17.slips.v1.QualityReportR\aquality\"^\n" +
	"\x11SubmitSlipRequest\x12\x1b\n" +
	"\tslip_type\x18\x01 \x01(\tR\bslipType\x12,\n" +
	"\x06fields\x18\x02 \x01(\v2\x14.slips.v1.SlipFieldsR\x06fields\"8\n" +
	"\x12SubmitSlipResponse\x12\"\n" +
	"\x04slip\x18\x01 \x01(\v2\x0e.slips.v1.SlipR\x04slip\"\x94\x02\n" +
	"\x04Slip\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tslip_type\x18\x02 \x01(\tR\bslipType\x12\x1b\n" +
	"\tslip_date\x18\x03 \x01(\tR\bslipDate\x12\x1f\n" +
	"\vclient_name\x18\x04 \x01(\tR\n" +
	"clientName\x12\x1b\n" +
	"\titem_name\x18\x05 \x01(\tR\bitemName\x12\x1d\n" +
	"\n" +
	"net_weight\x18\x06 \x01(\tR\tnetWeight\x12'\n" +
	"\x0fmanifest_number\x18\a \x01(\tR\x0emanifestNumber\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"H\n" +
	"\x10ListSlipsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"9\n" +
	"\x11ListSlipsResponse\x12$\n" +
	"\x05slips\x18\x01 \x03(\v2\x0e.slips.v1.SlipR\x05slips\"J\n" +
	"\x12ExportSlipsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"E\n" +
	"\x13ExportSlipsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\x84\x03\n" +
	"\fSlipsService\x12J\n" +
	"\vProcessSlip\x12\x1c.slips.v1.ProcessSlipRequest\x1a\x1d.slips.v1.ProcessSlipResponse\x12M\n" +
	"\fCheckQuality\x12\x1d.slips.v1.CheckQualityRequest\x1a\x1e.slips.v1.CheckQualityResponse\x12G\n" +
	"\n" +
	"SubmitSlip\x12\x1b.slips.v1.SubmitSlipRequest\x1a\x1c.slips.v1.SubmitSlipResponse\x12D\n" +
	"\tListSlips\x12\x1a.slips.v1.ListSlipsRequest\x1a\x1b.slips.v1.ListSlipsResponse\x12J\n" +
	"\vExportSlips\x12\x1c.slips.v1.ExportSlipsRequest\x1a\x1d.slips.v1.ExportSlipsResponseB:Z8github.com/wastetrack/slips-tracker/gen/slips/v1;slipsv1b\x06proto3"

var (
	file_slips_v1_slips_proto_rawDescOnce sync.Once
	file_slips_v1_slips_proto_rawDescData []byte
)

func file_slips_v1_slips_proto_rawDescGZIP() []byte {
	file_slips_v1_slips_proto_rawDescOnce.Do(func() {
		file_slips_v1_slips_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_slips_v1_slips_proto_rawDesc), len(file_slips_v1_slips_proto_rawDesc)))
	})
	return file_slips_v1_slips_proto_rawDescData
}

var file_slips_v1_slips_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_slips_v1_slips_proto_goTypes = []any{
	(*SlipFields)(nil),           // 0: slips.v1.SlipFields
	(*FieldConfidence)(nil),      // 1: slips.v1.FieldConfidence
	(*QualityReport)(nil),        // 2: slips.v1.QualityReport
	(*ProcessSlipRequest)(nil),   // 3: slips.v1.ProcessSlipRequest
	(*ProcessSlipResponse)(nil),  // 4: slips.v1.ProcessSlipResponse
	(*CheckQualityRequest)(nil),  // 5: slips.v1.CheckQualityRequest
	(*CheckQualityResponse)(nil), // 6: slips.v1.CheckQualityResponse
	(*SubmitSlipRequest)(nil),    // 7: slips.v1.SubmitSlipRequest
	(*SubmitSlipResponse)(nil),   // 8: slips.v1.SubmitSlipResponse
	(*Slip)(nil),                 // 9: slips.v1.Slip
	(*ListSlipsRequest)(nil),     // 10: slips.v1.ListSlipsRequest
	(*ListSlipsResponse)(nil),    // 11: slips.v1.ListSlipsResponse
	(*ExportSlipsRequest)(nil),   // 12: slips.v1.ExportSlipsRequest
	(*ExportSlipsResponse)(nil),  // 13: slips.v1.ExportSlipsResponse
	nil,                          // 14: slips.v1.ProcessSlipResponse.ConfidenceEntry
}
var file_slips_v1_slips_proto_depIdxs = []int32{
	0,  // 0: slips.v1.ProcessSlipResponse.fields:type_name -> slips.v1.SlipFields
	14, // 1: slips.v1.ProcessSlipResponse.confidence:type_name -> slips.v1.ProcessSlipResponse.ConfidenceEntry
	2,  // 2: slips.v1.ProcessSlipResponse.quality:type_name -> slips.v1.QualityReport
	2,  // 3: slips.v1.CheckQualityResponse.quality:type_name -> slips.v1.QualityReport
	0,  // 4: slips.v1.SubmitSlipRequest.fields:type_name -> slips.v1.SlipFields
	9,  // 5: slips.v1.SubmitSlipResponse.slip:type_name -> slips.v1.Slip
	9,  // 6: slips.v1.ListSlipsResponse.slips:type_name -> slips.v1.Slip
	1,  // 7: slips.v1.ProcessSlipResponse.ConfidenceEntry.value:type_name -> slips.v1.FieldConfidence
	3,  // 8: slips.v1.SlipsService.ProcessSlip:input_type -> slips.v1.ProcessSlipRequest
	5,  // 9: slips.v1.SlipsService.CheckQuality:input_type -> slips.v1.CheckQualityRequest
	7,  // 10: slips.v1.SlipsService.SubmitSlip:input_type -> slips.v1.SubmitSlipRequest
	10, // 11: slips.v1.SlipsService.ListSlips:input_type -> slips.v1.ListSlipsRequest
	12, // 12: slips.v1.SlipsService.ExportSlips:input_type -> slips.v1.ExportSlipsRequest
	4,  // 13: slips.v1.SlipsService.ProcessSlip:output_type -> slips.v1.ProcessSlipResponse
	6,  // 14: slips.v1.SlipsService.CheckQuality:output_type -> slips.v1.CheckQualityResponse
	8,  // 15: slips.v1.SlipsService.SubmitSlip:output_type -> slips.v1.SubmitSlipResponse
	11, // 16: slips.v1.SlipsService.ListSlips:output_type -> slips.v1.ListSlipsResponse
	13, // 17: slips.v1.SlipsService.ExportSlips:output_type -> slips.v1.ExportSlipsResponse
	13, // [13:18] is the sub-list for method output_type
	8,  // [8:13] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_slips_v1_slips_proto_init() }
func file_slips_v1_slips_proto_init() {
	if File_slips_v1_slips_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_slips_v1_slips_proto_rawDesc), len(file_slips_v1_slips_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_slips_v1_slips_proto_goTypes,
		DependencyIndexes: file_slips_v1_slips_proto_depIdxs,
		MessageInfos:      file_slips_v1_slips_proto_msgTypes,
	}.Build()
	File_slips_v1_slips_proto = out.File
	file_slips_v1_slips_proto_goTypes = nil
	file_slips_v1_slips_proto_depIdxs = nil
}
