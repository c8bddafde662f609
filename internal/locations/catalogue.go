package locations

// Countries is the shipped catalogue. Only Tunisia is enabled for now; more
// countries slot in here as plain data.

var Countries = []Country{
	{
		NameEn: "Tunisia",
		NameAr: "تونس",
		Cities: []City{
			{NameEn: "Tunis", NameAr: "تونس العاصمة", Latitude: 36.8065, Longitude: 10.1815},
			{NameEn: "Sfax", NameAr: "صفاقس", Latitude: 34.7406, Longitude: 10.7603},
			{NameEn: "Sousse", NameAr: "سوسة", Latitude: 35.8288, Longitude: 10.6405},
			{NameEn: "Kairouan", NameAr: "القيروان", Latitude: 35.6781, Longitude: 10.0963},
			{NameEn: "Bizerte", NameAr: "بنزرت", Latitude: 37.2744, Longitude: 9.8739},
			{NameEn: "Gabès", NameAr: "قابس", Latitude: 33.8815, Longitude: 10.0982},
			{NameEn: "Ariana", NameAr: "أريانة", Latitude: 36.8625, Longitude: 10.1956},
			{NameEn: "Kasserine", NameAr: "القصرين", Latitude: 35.1672, Longitude: 8.8365},
			{NameEn: "Monastir", NameAr: "المنستير", Latitude: 35.7643, Longitude: 10.8113},
			{NameEn: "Mahdia", NameAr: "المهدية", Latitude: 35.5047, Longitude: 11.0622},
			{NameEn: "Nabeul", NameAr: "نابل", Latitude: 36.4561, Longitude: 10.7376},
			{NameEn: "Béja", NameAr: "باجة", Latitude: 36.7256, Longitude: 9.1817},
			{NameEn: "Jendouba", NameAr: "جندوبة", Latitude: 36.5011, Longitude: 8.7802},
			{NameEn: "Medenine", NameAr: "مدنين", Latitude: 33.3549, Longitude: 10.5055},
			{NameEn: "Tozeur", NameAr: "توزر", Latitude: 33.9197, Longitude: 8.1339},
			{NameEn: "Sidi Bouzid", NameAr: "سيدي بوزيد", Latitude: 35.0354, Longitude: 9.4839},
			{NameEn: "Tataouine", NameAr: "تطاوين", Latitude: 32.9297, Longitude: 10.4518},
			{NameEn: "Gafsa", NameAr: "قفصة", Latitude: 34.425, Longitude: 8.7842},
			{NameEn: "Ben Arous", NameAr: "بن عروس", Latitude: 36.7533, Longitude: 10.2283},
			{NameEn: "Manouba", NameAr: "منوبة", Latitude: 36.8081, Longitude: 10.0972},
			{NameEn: "Zaghouan", NameAr: "زغوان", Latitude: 36.4029, Longitude: 10.1429},
			{NameEn: "Siliana", NameAr: "سليانة", Latitude: 36.0849, Longitude: 9.3708},
			{NameEn: "Le Kef", NameAr: "الكاف", Latitude: 36.1826, Longitude: 8.7148},
			{NameEn: "Kebili", NameAr: "قبلي", Latitude: 33.7072, Longitude: 8.971},
		},
	},
}
