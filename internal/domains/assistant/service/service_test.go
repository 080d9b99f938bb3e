package service_test

import (
	"context"
	"errors"
	"net/http"
	genaiMocks "petcare/infras/genai/mocks"
	"petcare/infras/otel/mocks"
	"petcare/internal/domains/assistant/model/dto"
	"petcare/internal/domains/assistant/service"
	"petcare/shared/failure"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAssistantService_Ask(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := genaiMocks.NewMockClient(ctrl)
	svc := service.New(client, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.PromptRequest
		setupMock func()
		want      string
		wantCode  int
		wantMsg   string
	}{
		{
			name: "prompt is refined before it is sent",
			req:  dto.PromptRequest{Prompt: "  How often should I groom a poodle?  "},
			setupMock: func() {
				client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, prompt string) (string, error) {
						assert.True(t, strings.HasPrefix(prompt, "How often should I groom a poodle? Please respond only"))
						assert.True(t, strings.HasSuffix(prompt, dto.Refinement))

						return "Every 4 to 6 weeks.", nil
					},
				)
			},
			want: "Every 4 to 6 weeks.",
		},
		{
			name:      "empty prompt",
			req:       dto.PromptRequest{},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			wantMsg:   service.MessagePromptRequired,
		},
		{
			name:      "blank prompt",
			req:       dto.PromptRequest{Prompt: " \n\t"},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			wantMsg:   service.MessagePromptRequired,
		},
		{
			name: "upstream failure",
			req:  dto.PromptRequest{Prompt: "hello"},
			setupMock: func() {
				client.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Ask(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Response)
		})
	}
}

func TestAssistantService_Ask_Unconfigured(t *testing.T) {
	svc := service.New(nil, mocks.NewOtel())

	_, err := svc.Ask(context.Background(), dto.PromptRequest{Prompt: "hello"})

	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	assert.Equal(t, service.MessageUnavailable, err.Error())
}
