package models

type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

type VerifyPasswordResponse struct {
	Success       bool `json:"success"`
	Authenticated bool `json:"authenticated"`
}

type GenerateRequest struct {
	FileContent string `json:"file_content"`
	FileType    string `json:"file_type"`
}

type GenerateResponse struct {
	Success    bool        `json:"success"`
	Flashcards []Flashcard `json:"flashcards"`
	Count      int         `json:"count"`
}

// ErrorResponse covers every negative answer the API gives. Message and the
// page fields are only set for the document_too_long and extraction errors.
type ErrorResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	Message    string `json:"message,omitempty"`
	PageCount  int    `json:"page_count,omitempty"`
	MaxAllowed int    `json:"max_allowed,omitempty"`
}
