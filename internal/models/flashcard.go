package models

type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FlashcardList is the JSON object the model is instructed to reply with.
type FlashcardList struct {
	Flashcards []Flashcard `json:"flashcards"`
}
