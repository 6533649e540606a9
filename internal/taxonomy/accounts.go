package taxonomy

// standardAccounts is the full national standard chart of accounts (154
// entries). Group rows structure the hierarchy; only leaf rows may receive
// ledger account mappings.
var standardAccounts = []Account{

	// Assets
	{Code: "1000", NameEN: "Assets", NameMN: "Хөрөнгө", ParentCode: "", IsGroup: true},
	{Code: "1100", NameEN: "Current assets", NameMN: "Эргэлтийн хөрөнгө", ParentCode: "1000", IsGroup: true},
	{Code: "1110", NameEN: "Cash and cash equivalents", NameMN: "Мөнгө, түүнтэй адилтгах хөрөнгө", ParentCode: "1100", IsGroup: true},
	{Code: "1111", NameEN: "Cash on hand", NameMN: "Кассан дахь бэлэн мөнгө", ParentCode: "1110", IsGroup: false},
	{Code: "1112", NameEN: "Bank current accounts - MNT", NameMN: "Банк дахь харилцах данс - төгрөг", ParentCode: "1110", IsGroup: false},
	{Code: "1113", NameEN: "Bank current accounts - foreign currency", NameMN: "Банк дахь харилцах данс - гадаад валют", ParentCode: "1110", IsGroup: false},
	{Code: "1114", NameEN: "Restricted cash", NameMN: "Хязгаарлагдсан бэлэн мөнгө", ParentCode: "1110", IsGroup: false},
	{Code: "1120", NameEN: "Short-term deposits", NameMN: "Богино хугацаат хадгаламж", ParentCode: "1100", IsGroup: false},
	{Code: "1200", NameEN: "Trade and other receivables", NameMN: "Авлага ба бусад авлага", ParentCode: "1100", IsGroup: true},
	{Code: "1201", NameEN: "Trade receivables - domestic", NameMN: "Дотоодын харилцагчаас авах авлага", ParentCode: "1200", IsGroup: false},
	{Code: "1202", NameEN: "Trade receivables - foreign", NameMN: "Гадаадын харилцагчаас авах авлага", ParentCode: "1200", IsGroup: false},
	{Code: "1203", NameEN: "Notes receivable", NameMN: "Векселиэр авах авлага", ParentCode: "1200", IsGroup: false},
	{Code: "1204", NameEN: "Receivables from employees", NameMN: "Ажилтнуудаас авах авлага", ParentCode: "1200", IsGroup: false},
	{Code: "1205", NameEN: "Allowance for doubtful receivables", NameMN: "Авлагын үнэ цэнийн бууралтын нөөц", ParentCode: "1200", IsGroup: false},
	{Code: "1300", NameEN: "Inventories", NameMN: "Бараа материал", ParentCode: "1100", IsGroup: true},
	{Code: "1301", NameEN: "Raw materials and supplies", NameMN: "Түүхий эд, материал", ParentCode: "1300", IsGroup: false},
	{Code: "1302", NameEN: "Work in progress", NameMN: "Дуусаагүй үйлдвэрлэл", ParentCode: "1300", IsGroup: false},
	{Code: "1303", NameEN: "Finished goods", NameMN: "Бэлэн бүтээгдэхүүн", ParentCode: "1300", IsGroup: false},
	{Code: "1304", NameEN: "Merchandise", NameMN: "Бараа бүтээгдэхүүн", ParentCode: "1300", IsGroup: false},
	{Code: "1305", NameEN: "Goods in transit", NameMN: "Замд байгаа бараа материал", ParentCode: "1300", IsGroup: false},
	{Code: "1306", NameEN: "Inventory write-down allowance", NameMN: "Бараа материалын үнэ цэнийн бууралтын нөөц", ParentCode: "1300", IsGroup: false},
	{Code: "1400", NameEN: "Other current assets", NameMN: "Бусад эргэлтийн хөрөнгө", ParentCode: "1100", IsGroup: true},
	{Code: "1410", NameEN: "Short-term financial investments", NameMN: "Богино хугацаат санхүүгийн хөрөнгө", ParentCode: "1400", IsGroup: false},
	{Code: "1420", NameEN: "Short-term loans issued", NameMN: "Богино хугацаат зээл олгосон", ParentCode: "1400", IsGroup: false},
	{Code: "1430", NameEN: "VAT receivable", NameMN: "НӨАТ-ын авлага", ParentCode: "1400", IsGroup: false},
	{Code: "1440", NameEN: "Excise tax receivable", NameMN: "Онцгой албан татварын авлага", ParentCode: "1400", IsGroup: false},
	{Code: "1450", NameEN: "Other tax receivable", NameMN: "Бусад татварын авлага", ParentCode: "1400", IsGroup: false},
	{Code: "1460", NameEN: "Prepaid expenses", NameMN: "Урьдчилж төлсөн зардал", ParentCode: "1400", IsGroup: false},
	{Code: "1470", NameEN: "Advances paid to suppliers", NameMN: "Нийлүүлэгчид өгсөн урьдчилгаа", ParentCode: "1400", IsGroup: false},
	{Code: "1500", NameEN: "Non-current assets held for sale", NameMN: "Борлуулж байгаа зорилгоор эзэмшиж буй эргэлтийн бус хөрөнгө", ParentCode: "1100", IsGroup: false},
	{Code: "1600", NameEN: "Biological assets - current", NameMN: "Биологийн хөрөнгө - богино хугацаат", ParentCode: "1100", IsGroup: false},
	{Code: "1700", NameEN: "Other current assets - miscellaneous", NameMN: "Бусад эргэлтийн хөрөнгө (ангилагдаагүй)", ParentCode: "1100", IsGroup: false},
	{Code: "1800", NameEN: "Property, plant and equipment", NameMN: "Үндсэн хөрөнгө", ParentCode: "1000", IsGroup: true},
	{Code: "1801", NameEN: "Land", NameMN: "Газрын үндсэн хөрөнгө", ParentCode: "1800", IsGroup: false},
	{Code: "1802", NameEN: "Buildings and structures", NameMN: "Барилга, байгууламж", ParentCode: "1800", IsGroup: false},
	{Code: "1803", NameEN: "Machinery and equipment", NameMN: "Машин, тоног төхөөрөмж", ParentCode: "1800", IsGroup: false},
	{Code: "1804", NameEN: "Vehicles", NameMN: "Тээврийн хэрэгсэл", ParentCode: "1800", IsGroup: false},
	{Code: "1805", NameEN: "Mining and specialized equipment", NameMN: "Уул уурхайн болон тусгай тоног төхөөрөмж", ParentCode: "1800", IsGroup: false},
	{Code: "1810", NameEN: "Construction in progress", NameMN: "Баригдаж буй барилга байгууламж", ParentCode: "1800", IsGroup: false},
	{Code: "1820", NameEN: "Accumulated depreciation - buildings", NameMN: "Үндсэн хөрөнгийн хуримтлагдсан элэгдэл - барилга", ParentCode: "1800", IsGroup: false},
	{Code: "1821", NameEN: "Accumulated depreciation - machinery and equipment", NameMN: "Үндсэн хөрөнгийн хуримтлагдсан элэгдэл - машин, тоног төхөөрөмж", ParentCode: "1800", IsGroup: false},
	{Code: "1822", NameEN: "Accumulated depreciation - vehicles", NameMN: "Үндсэн хөрөнгийн хуримтлагдсан элэгдэл - тээврийн хэрэгсэл", ParentCode: "1800", IsGroup: false},
	{Code: "1829", NameEN: "Accumulated depreciation - other PPE", NameMN: "Үндсэн хөрөнгийн хуримтлагдсан элэгдэл - бусад", ParentCode: "1800", IsGroup: false},
	{Code: "1900", NameEN: "Intangible assets", NameMN: "Биет бус хөрөнгө", ParentCode: "1000", IsGroup: true},
	{Code: "1901", NameEN: "Software", NameMN: "Программ хангамж", ParentCode: "1900", IsGroup: false},
	{Code: "1902", NameEN: "Licenses and rights", NameMN: "Лиценз, эрх", ParentCode: "1900", IsGroup: false},
	{Code: "1903", NameEN: "Goodwill", NameMN: "Гүүдвилл", ParentCode: "1900", IsGroup: false},
	{Code: "1910", NameEN: "Accumulated amortization of intangibles", NameMN: "Биет бус хөрөнгийн хуримтлагдсан элэгдэл", ParentCode: "1900", IsGroup: false},
	{Code: "1950", NameEN: "Long-term financial investments", NameMN: "Урт хугацаат санхүүгийн хөрөнгө", ParentCode: "1000", IsGroup: true},
	{Code: "1951", NameEN: "Long-term equity investments", NameMN: "Урт хугацаат хөрөнгө оруулалт - хувьцаа", ParentCode: "1950", IsGroup: false},
	{Code: "1952", NameEN: "Long-term debt instruments", NameMN: "Урт хугацаат хөрөнгө оруулалт - өрийн хэрэгсэл", ParentCode: "1950", IsGroup: false},
	{Code: "1960", NameEN: "Long-term loans issued", NameMN: "Урт хугацаат зээл олгосон", ParentCode: "1000", IsGroup: false},
	{Code: "1970", NameEN: "Biological assets - non-current", NameMN: "Биологийн хөрөнгө - урт хугацаат", ParentCode: "1000", IsGroup: false},
	{Code: "1980", NameEN: "Deferred tax asset", NameMN: "Хойшлогдсон татварын хөрөнгө", ParentCode: "1000", IsGroup: false},
	{Code: "1990", NameEN: "Other non-current assets", NameMN: "Бусад эргэлтийн бус хөрөнгө", ParentCode: "1000", IsGroup: false},

	// Liabilities
	{Code: "2000", NameEN: "Liabilities", NameMN: "Өр төлбөр", ParentCode: "", IsGroup: true},
	{Code: "2100", NameEN: "Current liabilities", NameMN: "Богино хугацаат өр төлбөр", ParentCode: "2000", IsGroup: true},
	{Code: "2110", NameEN: "Trade payables", NameMN: "Нийлүүлэгчдэд өгөх өр", ParentCode: "2100", IsGroup: false},
	{Code: "2120", NameEN: "Short-term bank loans", NameMN: "Богино хугацаат банкны зээл", ParentCode: "2100", IsGroup: false},
	{Code: "2130", NameEN: "Current portion of long-term loans", NameMN: "Урт хугацаат зээлийн богино хугацаат хэсэг", ParentCode: "2100", IsGroup: false},
	{Code: "2140", NameEN: "Short-term borrowings from related parties", NameMN: "Холбогдох этгээдээс авсан богино хугацаат зээл", ParentCode: "2100", IsGroup: false},
	{Code: "2150", NameEN: "Advances received from customers", NameMN: "Харилцагчаас авсан урьдчилгаа", ParentCode: "2100", IsGroup: false},
	{Code: "2160", NameEN: "Salaries and wages payable", NameMN: "Ажилчдын цалин хөлсний өглөг", ParentCode: "2100", IsGroup: false},
	{Code: "2170", NameEN: "Social insurance payable", NameMN: "Нийгмийн даатгалын шимтгэлийн өглөг", ParentCode: "2100", IsGroup: false},
	{Code: "2180", NameEN: "Personal income tax payable", NameMN: "Хувийн орлогын албан татварын өглөг", ParentCode: "2100", IsGroup: false},
	{Code: "2190", NameEN: "Other payables", NameMN: "Бусад өглөг", ParentCode: "2100", IsGroup: false},
	{Code: "2200", NameEN: "Taxes payable", NameMN: "Татварын өглөг", ParentCode: "2100", IsGroup: true},
	{Code: "2210", NameEN: "VAT payable", NameMN: "НӨАТ-ын өглөг", ParentCode: "2200", IsGroup: false},
	{Code: "2220", NameEN: "Excise tax payable", NameMN: "Онцгой албан татварын өглөг", ParentCode: "2200", IsGroup: false},
	{Code: "2230", NameEN: "Corporate income tax payable", NameMN: "Аж ахуйн нэгжийн орлогын албан татварын өглөг", ParentCode: "2200", IsGroup: false},
	{Code: "2240", NameEN: "Customs duties payable", NameMN: "Гаалийн албан татварын өглөг", ParentCode: "2200", IsGroup: false},
	{Code: "2250", NameEN: "Environmental fees payable", NameMN: "Байгаль орчны төлбөрийн өглөг", ParentCode: "2200", IsGroup: false},
	{Code: "2300", NameEN: "Provisions - current", NameMN: "Резерв ба түр хугацаат үүрэг", ParentCode: "2100", IsGroup: true},
	{Code: "2310", NameEN: "Provision for bonuses and unused vacations", NameMN: "Шагнал, амралтын мөнгөний нөөц", ParentCode: "2300", IsGroup: false},
	{Code: "2320", NameEN: "Provision for warranty obligations", NameMN: "Баталгаат засварын нөөц", ParentCode: "2300", IsGroup: false},
	{Code: "2330", NameEN: "Provision for taxes and penalties", NameMN: "Татвар, торгуулийн нөөц", ParentCode: "2300", IsGroup: false},
	{Code: "2400", NameEN: "Non-current liabilities", NameMN: "Урт хугацаат өр төлбөр", ParentCode: "2000", IsGroup: true},
	{Code: "2410", NameEN: "Long-term bank loans", NameMN: "Урт хугацаат банкны зээл", ParentCode: "2400", IsGroup: false},
	{Code: "2420", NameEN: "Bonds issued", NameMN: "Гаргасан бонд", ParentCode: "2400", IsGroup: false},
	{Code: "2430", NameEN: "Lease liabilities", NameMN: "Түрээсийн өр төлбөр", ParentCode: "2400", IsGroup: false},
	{Code: "2440", NameEN: "Long-term borrowings from related parties", NameMN: "Холбогдох этгээдээс авсан урт хугацаат зээл", ParentCode: "2400", IsGroup: false},
	{Code: "2450", NameEN: "Deferred tax liability", NameMN: "Хойшлогдсон татварын өр төлбөр", ParentCode: "2400", IsGroup: false},
	{Code: "2460", NameEN: "Asset retirement / decommissioning obligation", NameMN: "Үндсэн хөрөнгө буулгалтын нөөц, нөхөн сэргээлтийн үүрэг", ParentCode: "2400", IsGroup: false},
	{Code: "2490", NameEN: "Other non-current liabilities", NameMN: "Бусад урт хугацаат өр төлбөр", ParentCode: "2400", IsGroup: false},

	// Equity
	{Code: "3000", NameEN: "Equity", NameMN: "Өмч", ParentCode: "", IsGroup: true},
	{Code: "3100", NameEN: "Share capital", NameMN: "Хувь нийлүүлсэн хөрөнгө", ParentCode: "3000", IsGroup: true},
	{Code: "3110", NameEN: "Ordinary share capital", NameMN: "Энгийн хувьцааны хөрөнгө", ParentCode: "3100", IsGroup: false},
	{Code: "3120", NameEN: "Preferred share capital", NameMN: "Давуу эрхтэй хувьцааны хөрөнгө", ParentCode: "3100", IsGroup: false},
	{Code: "3200", NameEN: "Additional paid-in capital", NameMN: "Давхардуулан төлсөн хөрөнгө", ParentCode: "3000", IsGroup: false},
	{Code: "3300", NameEN: "Retained earnings (accumulated profit/loss)", NameMN: "Хуримтлагдсан ашиг (алдагдал)", ParentCode: "3000", IsGroup: true},
	{Code: "3310", NameEN: "Current year profit (loss)", NameMN: "Тайлант жилийн ашиг (алдагдал)", ParentCode: "3300", IsGroup: false},
	{Code: "3400", NameEN: "Reserve capital", NameMN: "Нөөцийн сан", ParentCode: "3000", IsGroup: true},
	{Code: "3410", NameEN: "Legal reserve", NameMN: "Хуулийн дагуу үүсгэсэн нөөц", ParentCode: "3400", IsGroup: false},
	{Code: "3420", NameEN: "Other reserves", NameMN: "Бусад нөөцийн сан", ParentCode: "3400", IsGroup: false},
	{Code: "3500", NameEN: "Treasury shares", NameMN: "Дахин худалдаж авсан хувьцаа", ParentCode: "3000", IsGroup: false},
	{Code: "3600", NameEN: "Non-controlling interest", NameMN: "Хяналтын бус сонирхол", ParentCode: "3000", IsGroup: false},

	// Revenue
	{Code: "4000", NameEN: "Revenue and gains", NameMN: "Орлого ба олз", ParentCode: "", IsGroup: true},
	{Code: "4100", NameEN: "Sales revenue - goods subject to excise tax", NameMN: "Борлуулалтын орлого - онцгой албан татвартай бараа", ParentCode: "4000", IsGroup: false},
	{Code: "4110", NameEN: "Sales revenue - other goods", NameMN: "Борлуулалтын орлого - бусад бараа", ParentCode: "4000", IsGroup: false},
	{Code: "4120", NameEN: "Service revenue", NameMN: "Үйлчилгээний орлого", ParentCode: "4000", IsGroup: false},
	{Code: "4130", NameEN: "Export sales revenue", NameMN: "Экспортын борлуулалтын орлого", ParentCode: "4000", IsGroup: false},
	{Code: "4140", NameEN: "Domestic sales revenue", NameMN: "Дотоодын борлуулалтын орлого", ParentCode: "4000", IsGroup: false},
	{Code: "4200", NameEN: "Other operating income", NameMN: "Үйл ажиллагааны бусад орлого", ParentCode: "4000", IsGroup: true},
	{Code: "4210", NameEN: "Income from subsidies and grants", NameMN: "Татаас, буцалтгүй тусламжийн орлого", ParentCode: "4200", IsGroup: false},
	{Code: "4220", NameEN: "Income from disposal of PPE", NameMN: "Үндсэн хөрөнгө борлуулалтын олз", ParentCode: "4200", IsGroup: false},
	{Code: "4230", NameEN: "Income from penalties and fines", NameMN: "Торгууль, алдангийн орлого", ParentCode: "4200", IsGroup: false},
	{Code: "4300", NameEN: "Finance income", NameMN: "Санхүүгийн орлого", ParentCode: "4000", IsGroup: true},
	{Code: "4310", NameEN: "Interest income", NameMN: "Хүүгийн орлого", ParentCode: "4300", IsGroup: false},
	{Code: "4320", NameEN: "Foreign exchange gain", NameMN: "Валютын ханшийн зөрүүгийн ашиг", ParentCode: "4300", IsGroup: false},
	{Code: "4330", NameEN: "Gain from fair value remeasurement", NameMN: "Хөрөнгийн үнэлгээний олз", ParentCode: "4300", IsGroup: false},
	{Code: "4400", NameEN: "Other non-operating income", NameMN: "Бусад үйл ажиллагааны бус орлого", ParentCode: "4000", IsGroup: false},

	// Cost of sales
	{Code: "5000", NameEN: "Cost of sales", NameMN: "Борлуулалтын өртөг", ParentCode: "", IsGroup: true},
	{Code: "5100", NameEN: "Cost of goods sold - excise goods", NameMN: "Борлуулсан онцгой албан татвартай барааны өртөг", ParentCode: "5000", IsGroup: false},
	{Code: "5110", NameEN: "Cost of goods sold - other goods", NameMN: "Борлуулсан бусад барааны өртөг", ParentCode: "5000", IsGroup: false},
	{Code: "5120", NameEN: "Cost of services rendered", NameMN: "Үйлчилгээ үзүүлэхэд гарсан өртөг", ParentCode: "5000", IsGroup: false},
	{Code: "5130", NameEN: "Cost of goods for resale", NameMN: "Дахин борлуулах барааны өртөг", ParentCode: "5000", IsGroup: false},

	// Operating expenses
	{Code: "6000", NameEN: "Operating expenses", NameMN: "Үйл ажиллагааны зардал", ParentCode: "", IsGroup: true},
	{Code: "6100", NameEN: "Selling and distribution expenses", NameMN: "Борлуулалт, түгээлтийн зардал", ParentCode: "6000", IsGroup: true},
	{Code: "6110", NameEN: "Advertising and marketing expenses", NameMN: "Сурталчилгаа, маркетингийн зардал", ParentCode: "6100", IsGroup: false},
	{Code: "6120", NameEN: "Transportation and logistics expenses", NameMN: "Тээвэр, ложистикийн зардал", ParentCode: "6100", IsGroup: false},
	{Code: "6130", NameEN: "Sales staff salaries", NameMN: "Борлуулалтын ажилтнуудын цалин", ParentCode: "6100", IsGroup: false},
	{Code: "6200", NameEN: "General and administrative expenses", NameMN: "Ерөнхий ба удирдлагын зардал", ParentCode: "6000", IsGroup: true},
	{Code: "6210", NameEN: "Office salaries and wages", NameMN: "Оффисын ажилчдын цалин хөлс", ParentCode: "6200", IsGroup: false},
	{Code: "6220", NameEN: "Social insurance expense", NameMN: "Нийгмийн даатгалын зардал", ParentCode: "6200", IsGroup: false},
	{Code: "6230", NameEN: "Office rent expense", NameMN: "Оффисын түрээсийн зардал", ParentCode: "6200", IsGroup: false},
	{Code: "6240", NameEN: "Utilities expense", NameMN: "Коммуналын зардал", ParentCode: "6200", IsGroup: false},
	{Code: "6250", NameEN: "Business travel expense", NameMN: "Томилолтын зардал", ParentCode: "6200", IsGroup: false},
	{Code: "6260", NameEN: "Professional services fees", NameMN: "Мэргэжлийн үйлчилгээний хөлс", ParentCode: "6200", IsGroup: false},
	{Code: "6300", NameEN: "Depreciation and amortization expense", NameMN: "Элэгдэл, хорогдлын зардал", ParentCode: "6000", IsGroup: true},
	{Code: "6310", NameEN: "Depreciation of property plant and equipment", NameMN: "Үндсэн хөрөнгийн элэгдлийн зардал", ParentCode: "6300", IsGroup: false},
	{Code: "6320", NameEN: "Amortization of intangible assets", NameMN: "Биет бус хөрөнгийн элэгдлийн зардал", ParentCode: "6300", IsGroup: false},
	{Code: "6400", NameEN: "Taxes other than income and excise", NameMN: "Орлогын ба онцгой албан татвараас бусад татварын зардал", ParentCode: "6000", IsGroup: true},
	{Code: "6410", NameEN: "Property tax expense", NameMN: "Хөрөнгийн татварын зардал", ParentCode: "6400", IsGroup: false},
	{Code: "6420", NameEN: "Road vehicle and other fees", NameMN: "Авто зам, тээврийн хэрэгслийн болон бусад хураамж", ParentCode: "6400", IsGroup: false},
	{Code: "6500", NameEN: "Repairs and maintenance expense", NameMN: "Засвар, үйлчилгээний зардал", ParentCode: "6000", IsGroup: false},
	{Code: "6600", NameEN: "Bad debt expense", NameMN: "Авлагын хугацаа хэтэрсний алдагдал", ParentCode: "6000", IsGroup: false},
	{Code: "6700", NameEN: "Inventory write-down / impairment expense", NameMN: "Бараа материалын үнэ цэнийн бууралтын зардал", ParentCode: "6000", IsGroup: false},
	{Code: "6800", NameEN: "Impairment of assets", NameMN: "Хөрөнгийн үнэ цэнийн бууралтын зардал", ParentCode: "6000", IsGroup: false},

	// Finance costs
	{Code: "7000", NameEN: "Finance costs", NameMN: "Санхүүгийн зардал", ParentCode: "", IsGroup: true},
	{Code: "7100", NameEN: "Interest expense", NameMN: "Хүүгийн зардал", ParentCode: "7000", IsGroup: false},
	{Code: "7200", NameEN: "Foreign exchange loss", NameMN: "Валютын ханшийн зөрүүгийн алдагдал", ParentCode: "7000", IsGroup: false},
	{Code: "7300", NameEN: "Bank fees and commissions", NameMN: "Банкны шимтгэл, хураамж", ParentCode: "7000", IsGroup: false},

	// Other expenses
	{Code: "8000", NameEN: "Other non-operating expenses and losses", NameMN: "Бусад үйл ажиллагааны бус зардал ба гарз", ParentCode: "", IsGroup: true},
	{Code: "8100", NameEN: "Loss on disposal of PPE", NameMN: "Үндсэн хөрөнгө борлуулалтын алдагдал", ParentCode: "8000", IsGroup: false},
	{Code: "8200", NameEN: "Fines and penalties expense", NameMN: "Торгууль, алдангийн зардал", ParentCode: "8000", IsGroup: false},
	{Code: "8300", NameEN: "Charity and sponsorship", NameMN: "Буцалтгүй тусламж, ивээн тэтгэх зардал", ParentCode: "8000", IsGroup: false},

	// Tax and off-balance
	{Code: "9000", NameEN: "Income tax expense", NameMN: "Орлогын албан татварын зардал", ParentCode: "", IsGroup: true},
	{Code: "9100", NameEN: "Current income tax", NameMN: "Тухайн үеийн орлогын албан татвар", ParentCode: "9000", IsGroup: false},
	{Code: "9200", NameEN: "Deferred income tax", NameMN: "Хойшлогдсон орлогын албан татвар", ParentCode: "9000", IsGroup: false},
	{Code: "9300", NameEN: "Excise tax expense (non-creditable)", NameMN: "Хасагдах боломжгүй онцгой албан татварын зардал", ParentCode: "9000", IsGroup: false},
	{Code: "9900", NameEN: "Off-balance sheet accounts", NameMN: "Тэнцлийн гаднах данс", ParentCode: "", IsGroup: true},
	{Code: "9910", NameEN: "Leased assets off-balance", NameMN: "Түрээсийн үндсэн хөрөнгө (тэнцлийн гаднах)", ParentCode: "9900", IsGroup: false},
	{Code: "9920", NameEN: "Guarantees given", NameMN: "Олгосон баталгаа, батлан даалт", ParentCode: "9900", IsGroup: false},
	{Code: "9930", NameEN: "Goods on consignment", NameMN: "Комиссийн журмаар хадгалж буй бараа", ParentCode: "9900", IsGroup: false},
}
