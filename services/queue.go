package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"bizlink/models"
	"bizlink/store"

	"github.com/go-redis/redis/v8"
)

const (
	NOTIFICATION_QUEUE = "relationship_notification_queue"
	QUEUE_WORKER_COUNT = 5
)

// QueueService доставляет уведомления о событиях отношений: задачи
// сериализуются в Redis-список, воркеры сохраняют их в хранилище и
// пушат подключенным клиентам через WebSocket
type QueueService struct {
	notifications store.NotificationStore
}

func NewQueueService(notifications store.NotificationStore) *QueueService {
	return &QueueService{notifications: notifications}
}

// StartWorkers запускает воркеры для обработки очереди
func (qs *QueueService) StartWorkers(ctx context.Context) {
	for i := 0; i < QUEUE_WORKER_COUNT; i++ {
		go qs.worker(ctx, i)
	}
}

// worker обрабатывает задачи из очереди
func (qs *QueueService) worker(ctx context.Context, workerID int) {
	log.Printf("Notification worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			log.Printf("Notification worker %d stopping", workerID)
			return
		default:
			// Получаем задачу из очереди (блокирующий вызов с таймаутом)
			result, err := RedisClient.BLPop(ctx, 5*time.Second, NOTIFICATION_QUEUE).Result()
			if err != nil {
				if err == redis.Nil {
					// Таймаут - продолжаем
					continue
				}
				log.Printf("Worker %d error getting task: %v", workerID, err)
				time.Sleep(time.Second)
				continue
			}

			if len(result) < 2 {
				continue
			}

			var event RelationshipEvent
			if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
				log.Printf("Worker %d error unmarshaling event: %v", workerID, err)
				continue
			}

			qs.processEvent(ctx, &event, workerID)
		}
	}
}

// processEvent сохраняет уведомление и пушит его получателю
func (qs *QueueService) processEvent(ctx context.Context, event *RelationshipEvent, workerID int) {
	notification := &models.Notification{
		UserID:  event.UserID,
		Kind:    event.Kind,
		Message: eventMessage(event),
	}
	if err := qs.notifications.Create(ctx, notification); err != nil {
		log.Printf("Worker %d failed to store notification: %v", workerID, err)
		return
	}
	if err := SendWsNotify(event.UserID, event.Kind, notification.Message); err != nil {
		log.Printf("Worker %d failed to push notification: %v", workerID, err)
	}
}

// Enqueue ставит событие в очередь уведомлений
func (qs *QueueService) Enqueue(ctx context.Context, event RelationshipEvent) error {
	if RedisClient == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := RedisClient.RPush(ctx, NOTIFICATION_QUEUE, data).Err(); err != nil {
		return fmt.Errorf("failed to enqueue event: %w", err)
	}
	return nil
}

// GetStats возвращает статистику очереди
func (qs *QueueService) GetStats() map[string]interface{} {
	stats := make(map[string]interface{})

	if RedisClient != nil {
		ctx := context.Background()
		stats["queue_length"] = RedisClient.LLen(ctx, NOTIFICATION_QUEUE).Val()
		stats["worker_count"] = QUEUE_WORKER_COUNT
		stats["queue_name"] = NOTIFICATION_QUEUE
	} else {
		stats["error"] = "Redis not available"
	}

	return stats
}

// eventMessage формирует текст уведомления по типу события
func eventMessage(event *RelationshipEvent) string {
	switch event.Kind {
	case models.NotifyRequestCreated:
		return fmt.Sprintf("New %s request from %s %d", event.RequestType, event.Requester.Type, event.Requester.ID)
	case models.NotifyRequestAccepted:
		return fmt.Sprintf("Your %s request to %s %d was accepted", event.RequestType, event.Requestee.Type, event.Requestee.ID)
	case models.NotifyRequestRejected:
		return fmt.Sprintf("Your %s request to %s %d was rejected", event.RequestType, event.Requestee.Type, event.Requestee.ID)
	case models.NotifyRequestDeleted:
		return fmt.Sprintf("A %s request involving you was removed", event.RequestType)
	default:
		return fmt.Sprintf("Relationship event: %s", event.Kind)
	}
}
