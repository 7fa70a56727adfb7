package dto

// SubscribeRequest HTTP订阅请求
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email" example:"alice@example.com"`
	Name  string `json:"name" binding:"max=100" example:"Alice"`
}

// UnsubscribeRequest HTTP退订请求
type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email" example:"alice@example.com"`
}

// SubscriberCountResponse 活跃订阅数响应
type SubscriberCountResponse struct {
	Count int64 `json:"count" example:"128"`
}
