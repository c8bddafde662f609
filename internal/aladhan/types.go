package aladhan

// Method is one prayer-time calculation convention, identified by the numeric
// ID the AlAdhan API expects. Different methods use different Fajr/Isha angles.

type Method struct {
	ID     int
	Key    string
	NameEn string
	NameAr string
}

// Methods is the fixed catalogue, in display order.

var Methods = []Method{
	{ID: 4, Key: "ummAlQura", NameEn: "Umm Al-Qura (Makkah)", NameAr: "أم القرى (مكة)"},
	{ID: 3, Key: "mwl", NameEn: "Muslim World League", NameAr: "رابطة العالم الإسلامي"},
	{ID: 2, Key: "isna", NameEn: "ISNA (North America)", NameAr: "ISNA (أمريكا الشمالية)"},
	{ID: 5, Key: "egypt", NameEn: "Egyptian Authority", NameAr: "الهيئة المصرية"},
	{ID: 1, Key: "karachi", NameEn: "University of Karachi", NameAr: "جامعة كراتشي"},
}

// PrimaryMethod is the default calculation method (Umm al-Qura).

var PrimaryMethod = Methods[0]

// Location is a read-only coordinate supplied by the settings collaborator.

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
}

// Times holds one day's five prayer times as HH:MM strings plus a display date.

type Times struct {
	Fajr    string `json:"fajr"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
	Date    string `json:"date"`
}

// SourceResult is the outcome of querying one method. Exactly one of
// Times and Err is set; failures are data, never panics.

type SourceResult struct {
	Method Method
	Times  *Times
	Err    string
}

// timingsResponse mirrors the AlAdhan /v1/timings payload.

type timingsResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Timings struct {
			Fajr    string `json:"Fajr"`
			Dhuhr   string `json:"Dhuhr"`
			Asr     string `json:"Asr"`
			Maghrib string `json:"Maghrib"`
			Isha    string `json:"Isha"`
		} `json:"timings"`
		Date struct {
			Readable string `json:"readable"`
			Hijri    struct {
				Day   string `json:"day"`
				Year  string `json:"year"`
				Month struct {
					Number int    `json:"number"`
					En     string `json:"en"`
					Ar     string `json:"ar"`
				} `json:"month"`
			} `json:"hijri"`
		} `json:"date"`
	} `json:"data"`
}
