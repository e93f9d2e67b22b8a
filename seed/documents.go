package seed

// Document is one sample decree to seed.
type Document struct {
	ID      string
	Title   string
	URL     string
	Content string
}

// SampleDocuments are excerpts from real decrees on business privileges.
var SampleDocuments = []Document{
	{
		ID:    "PQ-60",
		Title: "Yoshlar tadbirkorligini qo'llab-quvvatlash to'g'risida",
		URL:   "https://lex.uz/docs/7084623",
		Content: `
O'ZBEKISTON RESPUBLIKASI PREZIDENTINING QARORI

Yoshlar tadbirkorligini yanada rivojlantirish va ularni qo'llab-quvvatlash chora-tadbirlari to'g'risida

1-modda. Yoshlar tadbirkorligini rivojlantirish davlat maqsadli jamg'armasi tashkil etilsin.

Jamg'arma mablag'lari:
- 100 million AQSh dollari miqdorida ajratiladi
- Kamida 50 000 nafar yoshni tadbirkorlikka jalb qilish maqsadida ishlatiladi

2-modda. Yoshlar uchun quyidagi imtiyozlar belgilansin:
- 30 yoshgacha bo'lgan yoshlar tomonidan tashkil etiladigan mikrofirma va kichik korxonalar uchun mulk solig'idan 3 yil muddatga ozod qilish
- Yoshlar loyihalariga 10 million AQSh dollari hajmida venchur jamg'armasi tashkil etish
- Yoshlar biznes-loyihalariga imtiyozli kreditlar

3-modda. Yoshlar tadbirkorligi agentligi zimmasiga:
- Yoshlarni tadbirkorlikka tayyorlash
- Mentorlik dasturlarini tashkil etish
- Grant tanlovlarini o'tkazish vazifalari yuklanadi

4-modda. Daryolar, kanallar va qirg'oqlar bo'ylab joylashgan yer uchastkalarini xizmat ko'rsatish, ko'ngilochar va dam olish zonalari uchun elektron onlayn auktsion orqali ajratish belgilandi.
`,
	},
	{
		ID:    "PD-50",
		Title: "Kichik va o'rta biznes ulushini oshirish chora-tadbirlari to'g'risida",
		URL:   "https://lex.uz/docs/7129456",
		Content: `
O'ZBEKISTON RESPUBLIKASI PREZIDENTINING FARMONI

Kichik va o'rta biznes (KO'B) subyektlarining iqtisodiyotdagi rolini oshirish chora-tadbirlari to'g'risida

1-modda. Quyidagi maqsadlar belgilansin:
- KO'B ulushini YaIMda 55 foizga yetkazish
- 1,5 million doimiy ish o'rni yaratish

2-modda. 2025-yil 1-maydan boshlab:
- 20 ta tumanda sanoatni jadal rivojlantirish bo'yicha loyiha ofislari ishga tushiriladi
- Tadbirkorlarga maslahat xizmatlari ko'rsatiladi
- Mutaxassislarni jalb qilishga yordam beriladi

3-modda. 2025-yil 1-iyuldan boshlab:
- Yuqori texnologiyali ishlab chiqarish sohasidagi tadbirkorlar 5 yil muddatga 10 000 kvadrat metrgacha davlat ko'chmas mulkini BEPUL foydalanishga olishi mumkin

4-modda. 15 ta shahar va tumanda:
- Davlat muassasalari avval foydalangan binolarning birinchi qavatlari tadbirkorlarga mulk sifatida beriladi
- KO'B subyektlarini joylashtirish dasturi ishga tushiriladi

5-modda. Soliq imtiyozlari:
- Yangi tashkil etilgan KO'B subyektlari uchun dastlabki 2 yil daromad solig'idan ozod qilish
`,
	},
	{
		ID:    "PQ-306",
		Title: "Kichik biznesni uzluksiz qo'llab-quvvatlash kompleks dasturi",
		URL:   "https://lex.uz/docs/6577289",
		Content: `
O'ZBEKISTON RESPUBLIKASI PREZIDENTINING QARORI

2023-2026 yillar uchun kichik biznesni uzluksiz qo'llab-quvvatlash kompleks dasturi to'g'risida

1-modda. Dastur moliyalashtirish manbalari:
- Davlat fondlaridan 6 trillion so'm
- Xalqaro moliya institutlaridan 1,2 milliard AQSh dollari

2-modda. Biznesni rivojlantirish banki (sobiq Qishloq qurilish banki) dasturni amalga oshiruvchi asosiy bank etib belgilandi.

3-modda. Kredit imtiyozlari:
- Biznes tashkil etish yoki kengaytirish uchun 1,5 milliard so'mgacha kredit
- Qaytarish muddati 7 yilgacha
- Imtiyozli davr 2 yilgacha

4-modda. Aylanma mablag'lar uchun:
- 3 yilgacha muddatli kreditlar
- Yillik stavka Markaziy bank stavkasidan 4 foiz band yuqori

5-modda. Garovsiz kreditlar:
- 100 million so'mgacha garovsiz
- 150 million so'mgacha kamaytiriladigan garov talablari bilan

6-modda. Maslahat xizmatlari:
- Biznes-rejalar tuzish bo'yicha yordam
- Buxgalteriya va soliq maslahatlari
- Eksportga chiqish bo'yicha ko'mak
`,
	},
	{
		ID:    "IT-PARK",
		Title: "IT Park rezidentlari uchun soliq imtiyozlari",
		URL:   "https://lex.uz/docs/-4548291",
		Content: `
IT PARK REZIDENTLARI UCHUN SOLIQ IMTIYOZLARI

1-modda. IT Park rezidentlari quyidagi soliqlardan ozod:
- Foyda solig'i
- Mol-mulk solig'i
- Ijtimoiy soliq (kamaytirilgan stavkada)
- Dividend solig'i

2-modda. Xodimlar uchun imtiyozlar:
- Jismoniy shaxslardan olinadigan daromad solig'i 7,5% stavkada (odatda 12%)
- Ijtimoiy soliq 1% stavkada

3-modda. Eksport imtiyozlari:
- Eksport xizmatlari QQS dan ozod
- Chet el valyutasini erkin olish-sotish

4-modda. Ro'yxatdan o'tish:
- Onlayn ariza orqali ro'yxatdan o'tish mumkin
- Minimal hujjatlar talab qilinadi
- 5 ish kuni ichida qaror qabul qilinadi

5-modda. 2028-yil 1-yanvardan 2040-yil 1-yanvargacha:
- Eksport hajmi 50% dan oshsa, barcha soliqlardan (QQS dan tashqari) ozod
`,
	},
	{
		ID:    "FERMER",
		Title: "Fermer xo'jaliklarini qo'llab-quvvatlash",
		URL:   "https://lex.uz/docs/6541282",
		Content: `
FERMER XO'JALIKLARINI QO'LLAB-QUVVATLASH CHORA-TADBIRLARI

1-modda. Fermerlar uchun yer solig'i imtiyozlari:
- Yangi tashkil etilgan fermer xo'jaliklari 3 yil yer solig'idan ozod
- Tog'li hududlarda 5 yil muddatga ozod qilish

2-modda. Kredit imtiyozlari:
- Qishloq xo'jaligi texnikasi sotib olish uchun 5 yillik imtiyozli kredit
- Dastlabki to'lov 10% dan boshlanadi
- Yillik stavka 7-10%

3-modda. Subsidiyalar:
- Mineral o'g'itlar sotib olishga 30% subsidiya
- Sug'orish tizimlarini o'rnatishga 50% subsidiya
- Issiqxonalar qurishga 40% subsidiya

4-modda. Grant dasturlari:
- Yosh fermerlar uchun 50 million so'mgacha startap grantlar
- Innovatsion loyihalar uchun 200 million so'mgacha grantlar

5-modda. Ta'minot imtiyozlari:
- Urug'lik sotib olishda 20% chegirma
- Qishloq xo'jaligi dorilariga imtiyozli narx
`,
	},
}
