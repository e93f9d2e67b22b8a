package openai

// relevancePromptTemplate asks the model for a one-word verdict on whether a
// legal document title concerns business financial benefits.
const relevancePromptTemplate = `Analyze this legal document title from Uzbekistan:
Title: "%s"

Is this document relevant to BUSINESS FINANCIAL BENEFITS such as:
- Subsidies (subsidiya)
- Grants (grant)
- Tax holidays (soliq ta'tili)
- Preferential loans (imtiyozli kredit)
- Government financial support for entrepreneurs

Answer with ONLY one word: YES or NO`
