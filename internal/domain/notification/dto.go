package notification

// CreateRequest queues one notification for delivery.
type CreateRequest struct {
	RecipientID string
	SenderID    *string
	Type        Type
	Title       string
	Message     string
	Data        map[string]interface{}
}

// ListResponse pages through a user's notifications.
type ListResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int64          `json:"unread_count"`
	TotalItems    int64          `json:"total_items"`
}

// SSEEvent is the wire shape pushed over the stream.
type SSEEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}
