package faq

// CSV header names.
const (
	ColumnQuestion = "Question"
	ColumnAnswer   = "Answer"
)

// Defaults.
const (
	DefaultTopK       = 2
	DefaultCollection = "faq"
	DefaultSource     = "data/faq_data.csv"
)

// Record metadata keys.
const (
	MetadataAnswer = "answer"
)

// UserPrefix marks user lines in a transcript.
const UserPrefix = "User:"

// FallbackAnswer is what the assistant is told to say when the context has no answer.
const FallbackAnswer = "I'm sorry, I don't know that yet."

// GenerationErrorPrefix starts every fail-soft answer.
const GenerationErrorPrefix = "An error occurred while generating the answer: "
