package taxonomy

// accountKeywords maps leaf taxonomy codes to bilingual name keywords used by
// the auto-mapping heuristics. Multi-word keywords score higher than single
// words when matched against a ledger account name.
var accountKeywords = map[string][]string{
	"1111": {"cash on hand", "petty cash", "касс", "бэлэн мөнгө", "кассан дахь"},
	"1112": {"bank", "checking", "current account", "mnt", "төгрөг", "харилцах данс"},
	"1113": {"foreign currency", "usd", "eur", "cny", "гадаад валют"},
	"1114": {"restricted cash", "escrow", "хязгаарлагдсан"},
	"1120": {"short-term deposit", "savings", "хадгаламж", "богино хугацаат"},
	"1200": {"receivables", "авлага"},
	"1201": {"trade receivable", "domestic receivable", "customer receivable", "debtor", "дотоодын", "харилцагчаас авах"},
	"1202": {"foreign receivable", "export receivable", "гадаадын"},
	"1203": {"notes receivable", "вексел"},
	"1204": {"employee receivable", "staff loan", "ажилтнуудаас"},
	"1205": {"allowance", "doubtful", "bad debt reserve", "нөөц"},
	"1300": {"inventory", "stock", "бараа материал"},
	"1301": {"raw material", "supplies", "түүхий эд", "материал"},
	"1302": {"work in progress", "wip", "дуусаагүй үйлдвэрлэл"},
	"1303": {"finished goods", "бэлэн бүтээгдэхүүн"},
	"1304": {"merchandise", "goods for resale", "бараа бүтээгдэхүүн"},
	"1305": {"goods in transit", "замд"},
	"1306": {"inventory write-down", "obsolete", "бууралт"},
	"1400": {"other current asset", "бусад эргэлтийн"},
	"1410": {"short-term investment", "санхүүгийн хөрөнгө"},
	"1420": {"short-term loan issued", "loan receivable", "зээл олгосон"},
	"1430": {"vat receivable", "input vat", "нөат авлага"},
	"1440": {"excise receivable", "онцгой албан татвар"},
	"1450": {"other tax receivable", "бусад татвар"},
	"1460": {"prepaid expense", "prepayment", "урьдчилж төлсөн"},
	"1470": {"advance to supplier", "supplier advance", "урьдчилгаа"},
	"1500": {"held for sale", "disposal group", "борлуулж буй"},
	"1600": {"biological current", "биологийн"},
	"1700": {"other current", "miscellaneous", "ангилагдаагүй"},
	"1800": {"ppe", "fixed asset", "property plant equipment", "үндсэн хөрөнгө"},
	"1801": {"land", "газар"},
	"1802": {"building", "structure", "барилга", "байгууламж"},
	"1803": {"machinery", "equipment", "machine", "машин", "тоног төхөөрөмж"},
	"1804": {"vehicle", "car", "truck", "тээврийн хэрэгсэл"},
	"1805": {"mining equipment", "specialized", "уул уурхай", "тусгай"},
	"1810": {"construction in progress", "cwip", "баригдаж буй"},
	"1820": {"accumulated depreciation building", "building depreciation", "барилгын элэгдэл"},
	"1821": {"accumulated depreciation machinery", "equipment depreciation", "машин элэгдэл"},
	"1822": {"accumulated depreciation vehicle", "vehicle depreciation", "тээврийн элэгдэл"},
	"1829": {"accumulated depreciation other", "other depreciation", "бусад элэгдэл"},
	"1900": {"intangible", "биет бус хөрөнгө"},
	"1901": {"software", "license", "программ хангамж"},
	"1902": {"license", "right", "patent", "лиценз", "эрх"},
	"1903": {"goodwill", "гүүдвилл"},
	"1910": {"amortization", "intangible depreciation", "биет бус элэгдэл"},
	"1950": {"long-term investment", "урт хугацаат хөрөнгө оруулалт"},
	"1951": {"equity investment", "shares investment", "хувьцаа"},
	"1952": {"debt investment", "bond investment", "өрийн хэрэгсэл"},
	"1960": {"long-term loan issued", "урт хугацаат зээл"},
	"1970": {"biological non-current", "биологийн урт"},
	"1980": {"deferred tax asset", "dta", "хойшлогдсон татвар хөрөнгө"},
	"1990": {"other non-current", "бусад эргэлтийн бус"},
	"2110": {"trade payable", "accounts payable", "supplier payable", "creditor", "нийлүүлэгчид"},
	"2120": {"short-term bank loan", "bank overdraft", "банкны зээл богино"},
	"2130": {"current portion", "long-term due", "богино хугацаат хэсэг"},
	"2140": {"related party borrowing", "intercompany loan", "холбогдох этгээд"},
	"2150": {"advance from customer", "deferred revenue", "урьдчилгаа авсан"},
	"2160": {"salary payable", "wages payable", "цалин өглөг"},
	"2170": {"social insurance payable", "нийгмийн даатгал"},
	"2180": {"personal income tax payable", "pit payable", "хувийн орлогын татвар"},
	"2190": {"other payable", "accrued expense", "бусад өглөг"},
	"2200": {"taxes payable", "татварын өглөг"},
	"2210": {"vat payable", "output vat", "нөат өглөг"},
	"2220": {"excise payable", "онцгой албан татвар өглөг"},
	"2230": {"corporate income tax", "cit payable", "ааноат"},
	"2240": {"customs duty", "import duty", "гаалийн"},
	"2250": {"environmental fee", "байгаль орчин"},
	"2300": {"provision current", "резерв"},
	"2310": {"provision bonus", "vacation accrual", "шагнал", "амралт"},
	"2320": {"warranty provision", "баталгаат"},
	"2330": {"tax provision", "penalty provision", "торгууль"},
	"2400": {"non-current liability", "урт хугацаат өр"},
	"2410": {"long-term bank loan", "урт хугацаат банкны зээл"},
	"2420": {"bonds issued", "bond payable", "гаргасан бонд"},
	"2430": {"lease liability", "finance lease", "түрээс"},
	"2440": {"related party long-term", "холбогдох урт"},
	"2450": {"deferred tax liability", "dtl", "хойшлогдсон татвар өр"},
	"2460": {"decommissioning", "asset retirement", "нөхөн сэргээлт"},
	"2490": {"other non-current liability", "бусад урт хугацаат"},
	"3100": {"share capital", "capital stock", "хувь нийлүүлсэн"},
	"3110": {"ordinary share", "common stock", "энгийн хувьцаа"},
	"3120": {"preferred share", "preference share", "давуу эрхтэй"},
	"3200": {"additional paid-in", "share premium", "давхардуулан"},
	"3300": {"retained earnings", "accumulated profit", "хуримтлагдсан ашиг"},
	"3310": {"current year profit", "net income", "тайлант жилийн"},
	"3400": {"reserve", "нөөцийн сан"},
	"3410": {"legal reserve", "statutory reserve", "хуулийн"},
	"3420": {"other reserve", "бусад нөөц"},
	"3500": {"treasury share", "share buyback", "дахин худалдаж"},
	"3600": {"non-controlling interest", "minority interest", "хяналтын бус"},
	"4100": {"sales revenue excise", "онцгой албан татвартай бараа"},
	"4110": {"sales revenue", "revenue from goods", "борлуулалтын орлого"},
	"4120": {"service revenue", "үйлчилгээний орлого"},
	"4130": {"export revenue", "экспорт"},
	"4140": {"domestic revenue", "дотоодын"},
	"4200": {"other operating income", "үйл ажиллагааны бусад"},
	"4210": {"subsidy", "grant income", "татаас"},
	"4220": {"gain on disposal", "ppe disposal gain", "борлуулалтын олз"},
	"4230": {"penalty income", "fine income", "торгууль орлого"},
	"4300": {"finance income", "санхүүгийн орлого"},
	"4310": {"interest income", "хүүгийн орлого"},
	"4320": {"forex gain", "exchange gain", "ханшийн ашиг"},
	"4330": {"fair value gain", "revaluation gain", "үнэлгээний олз"},
	"4400": {"other non-operating income", "бусад үйл ажиллагааны бус"},
	"5100": {"cost of goods sold excise", "онцгой албан татвартай өртөг"},
	"5110": {"cost of goods sold", "cogs", "борлуулсан барааны өртөг"},
	"5120": {"cost of services", "үйлчилгээний өртөг"},
	"5130": {"cost of resale goods", "дахин борлуулах"},
	"6100": {"selling expense", "distribution cost", "борлуулалт"},
	"6110": {"advertising", "marketing", "сурталчилгаа"},
	"6120": {"transportation", "logistics", "тээвэр"},
	"6130": {"sales salary", "commission", "борлуулалтын цалин"},
	"6200": {"administrative expense", "general expense", "удирдлагын"},
	"6210": {"office salary", "admin salary", "оффис цалин"},
	"6220": {"social insurance expense", "ндш"},
	"6230": {"rent expense", "office rent", "түрээс"},
	"6240": {"utilities", "electricity", "коммунал"},
	"6250": {"travel expense", "business travel", "томилолт"},
	"6260": {"professional fee", "consulting fee", "audit fee", "мэргэжлийн"},
	"6300": {"depreciation expense", "элэгдлийн зардал"},
	"6310": {"depreciation ppe", "үндсэн хөрөнгийн элэгдэл"},
	"6320": {"amortization intangible", "биет бус элэгдэл"},
	"6400": {"other tax expense", "бусад татвар"},
	"6410": {"property tax", "хөрөнгийн татвар"},
	"6420": {"vehicle tax", "road fee", "авто зам"},
	"6500": {"repair", "maintenance", "засвар"},
	"6600": {"bad debt expense", "авлагын алдагдал"},
	"6700": {"inventory write-down", "бараа бууралт"},
	"6800": {"impairment", "хөрөнгийн бууралт"},
	"7100": {"interest expense", "хүүгийн зардал"},
	"7200": {"forex loss", "exchange loss", "ханшийн алдагдал"},
	"7300": {"bank fee", "bank charge", "банкны шимтгэл"},
	"8100": {"loss on disposal", "ppe disposal loss", "борлуулалтын алдагдал"},
	"8200": {"penalty expense", "fine expense", "торгууль зардал"},
	"8300": {"charity", "donation", "sponsorship", "буцалтгүй тусламж"},
	"9100": {"current tax expense", "cit expense", "тухайн үеийн татвар"},
	"9200": {"deferred tax expense", "хойшлогдсон татвар"},
	"9300": {"excise tax expense", "онцгой албан татвар зардал"},
}
