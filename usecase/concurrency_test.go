package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/zonaelectrica/zeia-server/domain/repositories"
)

// blockingAssistant parks the first Chat call until released; later calls
// answer immediately. Used to prove a slow gateway call on one thread
// does not stall the others.
type blockingAssistant struct {
	stubAssistant
	started chan struct{}
	release chan struct{}
	first   int32
}

func newBlockingAssistant() *blockingAssistant {
	return &blockingAssistant{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (b *blockingAssistant) Chat(ctx context.Context, message string) (repositories.Reply, error) {
	if atomic.CompareAndSwapInt32(&b.first, 0, 1) {
		close(b.started)
		<-b.release
	}
	return b.stubAssistant.Chat(ctx, message)
}

func TestSendDoesNotSerializeUnrelatedConversations(t *testing.T) {
	assistant := newBlockingAssistant()
	assistant.chatReply = repositories.Reply{Text: "respuesta"}
	service := NewChatService(assistant, NewConversationStore(), DefaultRoutingPolicy(), zap.NewNop())

	slow := service.StartConversation()
	fast := service.StartConversation()

	slowDone := make(chan struct{})
	go func() {
		defer close(slowDone)
		service.Send(context.Background(), slow.ID, "hola")
	}()
	<-assistant.started

	fastDone := make(chan struct{})
	go func() {
		defer close(fastDone)
		if _, err := service.Send(context.Background(), fast.ID, "hola"); err != nil {
			t.Errorf("Send failed: %v", err)
		}
	}()

	select {
	case <-fastDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Send on an unrelated conversation blocked behind an in-flight gateway call")
	}

	close(assistant.release)
	<-slowDone
}

func TestFollowUpDoesNotSerializeUnrelatedThreads(t *testing.T) {
	assistant := newBlockingAssistant()
	assistant.chatReply = repositories.Reply{Text: "respuesta"}
	assistant.report = "Identificación: contactor"
	service := NewAnalysisService(assistant, NewConversationStore(), 20, zap.NewNop())

	slow, _, err := service.Analyze(context.Background(), []byte{1}, "image/jpeg")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	fast, _, err := service.Analyze(context.Background(), []byte{2}, "image/jpeg")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	slowDone := make(chan struct{})
	go func() {
		defer close(slowDone)
		service.FollowUp(context.Background(), slow.ID, "¿Es grave?")
	}()
	<-assistant.started

	fastDone := make(chan struct{})
	go func() {
		defer close(fastDone)
		if _, err := service.FollowUp(context.Background(), fast.ID, "¿Es grave?"); err != nil {
			t.Errorf("FollowUp failed: %v", err)
		}
	}()

	select {
	case <-fastDone:
	case <-time.After(2 * time.Second):
		t.Fatal("FollowUp on an unrelated thread blocked behind an in-flight gateway call")
	}

	close(assistant.release)
	<-slowDone
}
