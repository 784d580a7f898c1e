package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Kitan-Dara06/flashcard-generator-public/internal/extract"
	"github.com/Kitan-Dara06/flashcard-generator-public/internal/models"
	mock_service "github.com/Kitan-Dara06/flashcard-generator-public/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFlashcardServiceMock(ctrl *gomock.Controller, setupMock func(*mock_service.MockChatAPII, *mock_service.MockExtractorI)) *FlashcardS {
	api := mock_service.NewMockChatAPII(ctrl)
	extractor := mock_service.NewMockExtractorI(ctrl)
	if setupMock != nil {
		setupMock(api, extractor)
	}

	return &FlashcardS{
		api:       api,
		extractor: extractor,
		apiKeySet: true,
		chunkSize: maxChunkChars,
		log:       zap.NewNop(),
	}
}

func TestFlashcardS_Generate(t *testing.T) {
	t.Parallel()

	type args struct {
		ctx      context.Context
		content  []byte
		fileType string
	}

	tests := []struct {
		name    string
		args    args
		f       func(*mock_service.MockChatAPII, *mock_service.MockExtractorI)
		want    []models.Flashcard
		wantErr error
	}{
		{
			name: "success",
			args: args{
				ctx:      context.Background(),
				content:  []byte("file bytes"),
				fileType: extract.MediaTypePlain,
			},
			f: func(ma *mock_service.MockChatAPII, me *mock_service.MockExtractorI) {
				me.EXPECT().Text([]byte("file bytes"), extract.MediaTypePlain).Return("Photosynthesis converts light into energy.", nil)
				ma.EXPECT().ChatJSON(gomock.Any(), gomock.Any()).Return(
					`{"flashcards":[{"question":"What does photosynthesis convert?","answer":"Light into chemical energy."}]}`, nil)
			},
			want: []models.Flashcard{
				{Question: "What does photosynthesis convert?", Answer: "Light into chemical energy."},
			},
		},
		{
			name: "success: trailing commas repaired",
			args: args{
				ctx:      context.Background(),
				content:  []byte("file bytes"),
				fileType: extract.MediaTypePlain,
			},
			f: func(ma *mock_service.MockChatAPII, me *mock_service.MockExtractorI) {
				me.EXPECT().Text(gomock.Any(), gomock.Any()).Return("some text", nil)
				ma.EXPECT().ChatJSON(gomock.Any(), gomock.Any()).Return(
					`{"flashcards":[{"question":"Q?","answer":"A.",},],}`, nil)
			},
			want: []models.Flashcard{{Question: "Q?", Answer: "A."}},
		},
		{
			name: "success: blank answer gets the fallback",
			args: args{
				ctx:      context.Background(),
				content:  []byte("file bytes"),
				fileType: extract.MediaTypePlain,
			},
			f: func(ma *mock_service.MockChatAPII, me *mock_service.MockExtractorI) {
				me.EXPECT().Text(gomock.Any(), gomock.Any()).Return("some text", nil)
				ma.EXPECT().ChatJSON(gomock.Any(), gomock.Any()).Return(
					`{"flashcards":[{"question":"First?","answer":"Yes."},{"question":"Second?","answer":"  "}]}`, nil)
			},
			want: []models.Flashcard{
				{Question: "First?", Answer: "Yes."},
				{Question: "Second?", Answer: answerFallback},
			},
		},
		{
			name: "success: unparseable reply yields no cards",
			args: args{
				ctx:      context.Background(),
				content:  []byte("file bytes"),
				fileType: extract.MediaTypePlain,
			},
			f: func(ma *mock_service.MockChatAPII, me *mock_service.MockExtractorI) {
				me.EXPECT().Text(gomock.Any(), gomock.Any()).Return("some text", nil)
				ma.EXPECT().ChatJSON(gomock.Any(), gomock.Any()).Return("I am sorry, I cannot do that.", nil)
			},
			want: []models.Flashcard{},
		},
		{
			name: "success: chat error is not fatal",
			args: args{
				ctx:      context.Background(),
				content:  []byte("file bytes"),
				fileType: extract.MediaTypePlain,
			},
			f: func(ma *mock_service.MockChatAPII, me *mock_service.MockExtractorI) {
				me.EXPECT().Text(gomock.Any(), gomock.Any()).Return("some text", nil)
				ma.EXPECT().ChatJSON(gomock.Any(), gomock.Any()).Return("", errors.New("service unavailable"))
			},
			want: []models.Flashcard{},
		},
		{
			name: "extraction error propagates",
			args: args{
				ctx:      context.Background(),
				content:  []byte("file bytes"),
				fileType: "image/png",
			},
			f: func(ma *mock_service.MockChatAPII, me *mock_service.MockExtractorI) {
				me.EXPECT().Text(gomock.Any(), gomock.Any()).Return("",
					&extract.Error{Kind: extract.KindUnsupportedType, Message: "Unsupported file type"})
			},
			wantErr: &extract.Error{Kind: extract.KindUnsupportedType, Message: "Unsupported file type"},
		},
		{
			name: "blank text",
			args: args{
				ctx:      context.Background(),
				content:  []byte("file bytes"),
				fileType: extract.MediaTypePlain,
			},
			f: func(ma *mock_service.MockChatAPII, me *mock_service.MockExtractorI) {
				me.EXPECT().Text(gomock.Any(), gomock.Any()).Return(" \n\t ", nil)
			},
			wantErr: ErrNoText,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFlashcardServiceMock(ctrl, tt.f)

			got, err := f.Generate(tt.args.ctx, tt.args.content, tt.args.fileType)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlashcardS_Generate_NoAPIKey(t *testing.T) {
	t.Parallel()

	f := &FlashcardS{apiKeySet: false, chunkSize: maxChunkChars, log: zap.NewNop()}

	_, err := f.Generate(context.Background(), []byte("x"), extract.MediaTypePlain)
	assert.ErrorIs(t, err, ErrAPIKeyNotConfigured)
}

func TestFlashcardS_Generate_ChunkedText(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFlashcardServiceMock(ctrl, func(ma *mock_service.MockChatAPII, me *mock_service.MockExtractorI) {
		me.EXPECT().Text(gomock.Any(), gomock.Any()).Return("aaaaabbbbb", nil)
		// First chunk fails, second one still produces a card.
		ma.EXPECT().ChatJSON(gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))
		ma.EXPECT().ChatJSON(gomock.Any(), gomock.Any()).Return(
			`{"flashcards":[{"question":"Q?","answer":"A."}]}`, nil)
	})
	f.chunkSize = 5

	got, err := f.Generate(context.Background(), []byte("x"), extract.MediaTypePlain)
	require.NoError(t, err)
	assert.Equal(t, []models.Flashcard{{Question: "Q?", Answer: "A."}}, got)
}

func TestSplitChunks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		size int
		want []string
	}{
		{
			name: "shorter than one chunk",
			text: "hello",
			size: 10,
			want: []string{"hello"},
		},
		{
			name: "splits evenly",
			text: "aaabbb",
			size: 3,
			want: []string{"aaa", "bbb"},
		},
		{
			name: "last chunk shorter",
			text: "aaabbbc",
			size: 3,
			want: []string{"aaa", "bbb", "c"},
		},
		{
			name: "multibyte runes stay intact",
			text: "ααββ",
			size: 2,
			want: []string{"αα", "ββ"},
		},
		{
			name: "empty text",
			text: "",
			size: 3,
			want: nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, splitChunks(tt.text, tt.size))
		})
	}
}

func TestParseFlashcards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []models.Flashcard
	}{
		{
			name: "valid list",
			raw:  `{"flashcards":[{"question":" Q? ","answer":" A. "}]}`,
			want: []models.Flashcard{{Question: "Q?", Answer: "A."}},
		},
		{
			name: "invalid json",
			raw:  `{"flashcards":`,
			want: nil,
		},
		{
			name: "no valid card rejects the reply",
			raw:  `{"flashcards":[{"question":"","answer":""},{"question":"Q?","answer":" "}]}`,
			want: nil,
		},
		{
			name: "empty list",
			raw:  `{"flashcards":[]}`,
			want: nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseFlashcards(tt.raw))
		})
	}
}
