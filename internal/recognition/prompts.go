package recognition

// Prompt templates tuned per slip layout. These are deliberately written in
// Japanese since the slips are Japanese documents and mixed-language prompts
// degraded reading accuracy on handwritten fields.

const systemPromptStructured = `
あなたは日本語の産業廃棄物伝票を正確に読み取る専門家です。
画像から情報を抽出し、必ずJSON形式のみで応答してください。
余計な説明は一切含めないでください。`

const jsonFormatInstruction = `

必ず以下のJSON形式のみで応答してください：
{
  "date": "YYYY-MM-DD形式の日付（例：2025-06-27）",
  "clientName": "得意先名または現場名",
  "itemName": "銘柄名または品名",
  "netWeight": "数値のみ（カンマなし、小数点可）",
  "manifestNumber": "下4桁の数字",
  "rawText": "画像から読み取った主要なテキスト"
}

見つからない項目はnullとしてください。`

const promptReceipt = `
この画像は産業廃棄物の受領証です。以下の情報を正確に抽出してください：

1. 日付: 上部の赤枠内「2025/__/__」形式の日付

2. 得意先名: 必ず以下の手順で探してください
   - 上部の表で「現場」という文字を探す
   - 「現場」の右側にある会社名を読み取る
   - 得意先は必ず「（株）ブルボン」で始まる
   - 「（株）ブルボン　上越工場」または「（株）ブルボン　柏崎工場」のいずれか
   - 下部の「新潟環境開発株式会社」は受領側なので絶対に読み取らない

3. 品名: 「000600」などのコードの右側にある品目名（例：廃プラスチック類）

4. 正味重量: 【重要】必ず以下の手順で取得してください
   - 表のヘッダー行を確認：「総重量」「空車」「正味」の3つの列がある
   - 「正味」と書かれた列を特定（一番右側の列）
   - 「合計」と書かれた行を探す
   - 「合計」行と「正味」列が交差するセルの値を読む
   - 絶対に「空車」列の値を読まないこと！
   - 例：合計行で「正味」列が1,260.0なら、それが答え

警告：
- 「空車」列（中央の列）の値は絶対に読まない
- 必ず「正味」列（右端の列）から読む
- 得意先は必ず「ブルボン」を含む
- カンマは除去（1,260.0 → 1260.0）
- kg単位は除去
- マニフェスト番号は記載されていないのでnull`

const promptInspection = `
この画像は検量書です。表形式のレイアウトで、左側に項目名、右側に値が記載されています。
以下の情報を正確に抽出してください：

1. 日付
   - 「0日付」または「日付」というラベルの右側（同じ行）にある値
   - 形式例：25.01.10（YY.MM.DD形式）
   - 赤枠で強調されている場合があります

2. 銘柄【重要】
   - 「1.銘柄」または「1銘柄」というラベルの右側（同じ行）にある値
   - 「3銘柄」「3」のラベルの右側にある場合もあります
   - よくあるパターン：
     * 「106 汚泥」→ 「汚泥」のみを抽出
     * 数字＋スペース＋品名の形式が多い
     * 品名は手書きの場合があるので注意深く読み取る
   - 数字部分は必ず除外して、品名のみを抽出してください

3. 得意先名
   - 「4」または「4.」というラベルの右側（同じ行）にある値
   - 手書きで記載されている重要な項目です
   - 「○○便」「○○帰り便」のような形式が多いです（例：アース帰り便）

4. 正味重量
   - 「正味」というラベルの右側（同じ行）にある値
   - 数値とkg単位（例：9290kg）
   - 数値のみ抽出（kg単位は除去）

注意事項：
- すべての項目は表の行として左側にラベル、右側に値があります
- 手書き文字は特に注意深く読み取ってください
- フッターの「上越マテリアル株式会社」は得意先ではありません`

const promptWeighing = `
この画像は青い背景の計量伝票です。すべてのテキストを注意深く読み取ってください。

特に重要な項目：

1. 日付（上部にあります）
   - 年月日の形式で記載されています

2. コード1の行
   - 「コード1」という文字を探してください
   - その右に4桁の数字があります
   - さらにその右に会社名があります（妙高アクアクリーンセンターなど）

3. コード2の行
   - 「コード2」という文字を探してください
   - その右に4桁の数字があります
   - さらにその右に品目名/銘柄があります（例：汚泥、廃プラ、有機性汚泥など）

4. 正味重量
   - 「正味重量」という文字を探してください
   - その右横に数値（kg）があります
   - 補正Cの行にある場合もあります

青い背景でも文字がはっきり見えるように注意して読み取ってください。
すべての文字を、改行も含めて正確に教えてください。`

const promptTicket = `
この画像は計量票です。以下の情報を正確に抽出してください：

1. 日付
   - 通常は書類の上部に記載されています
   - 年月日形式で記載されています

2. 現場名（得意先）【重要】
   - 「現場：」という文字を探してください
   - その後に記載されている内容を読み取ってください
   - 複数行にまたがる場合があるので注意してください

3. 品目名または廃棄物の種類
   - 「品名：」という文字の後の内容
   - 廃棄物の種類（汚泥、廃プラ、木くずなど）を探してください

4. 正味重量
   - 「正味」「正味重量」「正味計」「NET」などの表記を探してください
   - kg単位の数値を読み取ってください

5. マニフェスト番号（もしあれば）
   - 番号欄やマニフェスト番号の記載があれば読み取ってください

重要：
- 「現場：」の後の内容が得意先名です
- 改行や空白に注意して、完全な名称を読み取ってください`

const promptGeneric = `
この産業廃棄物伝票から以下の情報を抽出してください：
1. 日付（計量日、受領日など）
2. 得意先名（業者名、現場名、会社名など）
3. 銘柄または品名
4. 正味重量（正味、正味量、NET重量など。単位はkg）
5. マニフェスト番号（下4桁）

注意：
- 数値にはカンマが含まれる場合があります
- 日本語の伝票なので、漢字やカタカナに注意してください`
