package chat

import (
	"context"

	"github.com/mathison-ai/mathison-go/pkg/apiclient"
)

// SendMessage posts a user message.
func (c *Client) SendMessage(ctx context.Context, content string) (*SendMessageResponse, error) {
	payload := apiclient.Payload{}.Set("content", content)

	raw, err := c.api.Post(ctx, "/api/chat/send", payload)
	return decodeRef[SendMessageResponse]("send message", raw, err)
}

// ChatHistory returns one page of messages.
func (c *Client) ChatHistory(ctx context.Context, opts HistoryOptions) (*ChatHistoryResponse, error) {
	query := apiclient.Query{}.
		SetInt("limit", opts.Limit).
		SetInt("offset", opts.Offset)

	raw, err := c.api.Get(ctx, "/api/chat/history", query)
	return decodeRef[ChatHistoryResponse]("get chat history", raw, err)
}
