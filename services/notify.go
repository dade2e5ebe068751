package services

import (
	"context"
	"encoding/json"
	"log"
)

type wsNotify struct {
	NotifyType string `json:"notify_type"`
	Message    string `json:"message"`
}

// SendWsNotify - отправка уведомления через WebSocket
func SendWsNotify(userID int64, notifyType string, message string) error {
	if len(notifyType) == 0 {
		notifyType = "info"
	}
	if len(message) == 0 {
		return nil
	}
	if len(message) > 100 {
		message = message[:100] + "..."
	}
	// Формируем сообщение в формате JSON
	notify := wsNotify{NotifyType: notifyType, Message: message}
	jsonData, err := json.Marshal(notify)
	if err != nil {
		return err
	}
	GlobalWSConnManager.Send(userID, jsonData)
	return nil
}

// EventNotifier рассылает события жизненного цикла в очередь уведомлений
// и в exchange для внешних потребителей. Сбои доставки логируются и не
// прерывают операцию, их вызвавшую.
type EventNotifier struct {
	queue *QueueService
}

func NewEventNotifier(queue *QueueService) *EventNotifier {
	return &EventNotifier{queue: queue}
}

func (n *EventNotifier) Notify(ctx context.Context, event RelationshipEvent) {
	if n.queue != nil {
		if err := n.queue.Enqueue(ctx, event); err != nil {
			log.Printf("Failed to enqueue notification for user %d: %v", event.UserID, err)
		}
	}
	if err := PublishRelationshipEvent(ctx, event); err != nil {
		log.Printf("Failed to publish relationship event for user %d: %v", event.UserID, err)
	}
}
