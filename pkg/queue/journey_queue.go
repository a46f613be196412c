package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// 任务类型
	TaskTypeJourneyEvent = "journey:event"

	// 旅程事件队列名称
	JourneyQueueName = "journey"

	MaxRetries  = 3
	TaskTimeout = time.Minute
)

// JourneyEventTask 公开访问路径上产生的行为事件任务
type JourneyEventTask struct {
	Appid     string `json:"appid"`
	ClientID  string `json:"client_id"`
	PageType  string `json:"page_type"`
	Kind      string `json:"kind"`
	CreatedAt int64  `json:"created_at"`
}

// JourneyQueue 基于 Asynq 的队列管理器
type JourneyQueue struct {
	client    *asynq.Client
	keyPrefix string
}

// NewJourneyQueueWithClient 使用已存在的 Client 创建队列
// 适用于多个队列共享同一个 asynq 连接的场景
func NewJourneyQueueWithClient(keyPrefix string, client *asynq.Client) *JourneyQueue {
	if keyPrefix == "" {
		keyPrefix = "tga"
	}

	return &JourneyQueue{
		keyPrefix: keyPrefix,
		client:    client,
	}
}

// EnqueueEvent 将事件加入队列
func (q *JourneyQueue) EnqueueEvent(ctx context.Context, event JourneyEventTask) error {
	if event.CreatedAt == 0 {
		event.CreatedAt = time.Now().Unix()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	_, err = q.client.EnqueueContext(ctx, asynq.NewTask(TaskTypeJourneyEvent, payload,
		asynq.MaxRetry(MaxRetries),
		asynq.Timeout(TaskTimeout),
		asynq.Queue(JourneyQueueName),
	))

	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	return nil
}

// HandlerFunc Asynq 任务处理器函数类型
type HandlerFunc func(ctx context.Context, task *asynq.Task) error

// SetupHandler 设置任务处理器
func (q *JourneyQueue) SetupHandler(mux *asynq.ServeMux, handler HandlerFunc) {
	mux.HandleFunc(TaskTypeJourneyEvent, func(ctx context.Context, task *asynq.Task) error {
		return handler(ctx, task)
	})
}

// ParseJourneyEventTask 解析任务载荷
func ParseJourneyEventTask(task *asynq.Task) (JourneyEventTask, error) {
	var event JourneyEventTask
	if err := json.Unmarshal(task.Payload(), &event); err != nil {
		return event, fmt.Errorf("failed to unmarshal journey event task: %w", err)
	}
	return event, nil
}
