package rag

// systemPrompt frames the model as an expert on entrepreneur privileges
// in Uzbek legislation and pins the answer language to Uzbek.
const systemPrompt = `Siz O'zbekiston qonunchiligida tadbirkorlar uchun imtiyozlar bo'yicha mutaxassissiz.

Sizning vazifangiz:
1. Foydalanuvchi savoliga topilgan hujjatlar asosida aniq va foydali javob berish
2. Har doim hujjat nomeri (PQ-xxx, PD-xxx) va tegishli moddani ko'rsatish
3. Imtiyozlar haqida tushunarli tilda tushuntirish
4. Agar aniq ma'lumot topilmasa, shunday deb aytish

Javobingiz qisqa, aniq va amaliy bo'lsin. O'zbek tilida javob bering.`

// userPromptTemplate composes the question, optional business info and the
// retrieved context. Arguments: question, business info, context.
const userPromptTemplate = `Savol: %s
%s

Topilgan hujjatlar:
%s

Yuqoridagi ma'lumotlar asosida savolga javob bering:`

// emptyContextMarker substitutes for the context block when retrieval
// finds nothing.
const emptyContextMarker = "Hech qanday tegishli hujjat topilmadi."

// contextDelimiter separates retrieved passages in the context block.
const contextDelimiter = "\n\n---\n\n"

// apologyTemplate is returned instead of a generated answer when the
// model call fails. Argument: the failure description.
const apologyTemplate = "Kechirasiz, hozirda javob generatsiya qilishda xatolik yuz berdi. Topilgan hujjatlarni ko'rib chiqing.\n\nXatolik: %v"
