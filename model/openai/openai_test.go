package openai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saimedhP-gif/termchat/model"
)

func TestNewUnsupportedModel(t *testing.T) {
	_, err := New("gpt-unknown")
	require.Error(t, err)
	assert.True(t, model.IsUnsupportedModel(err))
	assert.Contains(t, err.Error(), "gpt-unknown")
}

func TestPlaceholderWithoutCredential(t *testing.T) {
	for _, key := range []string{"", "sk-placeholder", "your_openai_api_key_here"} {
		m, err := New("gpt-4", func(o *Options) { o.APIKey = key })
		require.NoError(t, err)

		resp, err := m.GenerateResponse(context.Background(), []model.Message{
			{Role: model.RoleUser, Content: "Hello"},
		})
		require.NoError(t, err)
		assert.Contains(t, resp.Text, "OPENAI_API_KEY")
		require.NotNil(t, resp.Usage)
		assert.Equal(t, model.TokenUsage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30}, *resp.Usage)
	}
}

func TestPlaceholderIsDeterministic(t *testing.T) {
	m, err := New("gpt-3.5-turbo", func(o *Options) { o.APIKey = "" })
	require.NoError(t, err)

	first, err := m.GenerateResponse(context.Background(), []model.Message{
		{Role: model.RoleUser, Content: "one"},
	})
	require.NoError(t, err)
	second, err := m.GenerateResponse(context.Background(), []model.Message{
		{Role: model.RoleUser, Content: "two"},
	})
	require.NoError(t, err)
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, *first.Usage, *second.Usage)
}

func TestBuildMessagesPreservesRolesAndOrder(t *testing.T) {
	msgs := buildMessages([]model.Message{
		{Role: model.RoleSystem, Content: "context"},
		{Role: model.RoleUser, Content: "hi"},
		{Role: model.RoleAssistant, Content: "hello"},
		{Role: model.RoleUser, Content: "again"},
	})
	require.Len(t, msgs, 4)
	assert.NotNil(t, msgs[0].OfSystem)
	assert.NotNil(t, msgs[1].OfUser)
	assert.NotNil(t, msgs[2].OfAssistant)
	assert.NotNil(t, msgs[3].OfUser)
}

func TestClassifyQuota(t *testing.T) {
	err := classify(errors.New("429: insufficient_quota"))

	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, model.ErrorKindQuota, apiErr.Kind)
	assert.Contains(t, apiErr.Message, "billing")
}

func TestClassifyTransportWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := classify(cause)

	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, model.ErrorKindTransport, apiErr.Kind)
	assert.Contains(t, apiErr.Message, "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestInfo(t *testing.T) {
	m, err := New("gpt-4-turbo", func(o *Options) { o.APIKey = "" })
	require.NoError(t, err)
	assert.Equal(t, model.Info{Name: "gpt-4-turbo", Provider: "OpenAI"}, m.Info())
}
