package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
)

// Canal de mudanças da tabela financeira. O painel assina este canal e
// refaz a consulta ao receber qualquer evento; não há garantia de ordem
// entre a notificação e o término do re-fetch.
const ChannelFinancialRecords = "financial_records:changes"

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

type ChangeEvent struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     uint   `json:"id"`
}

func NewClient(redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("failed to parse redis url: %v", err)
	}
	return redis.NewClient(opts)
}

type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// Publish é melhor-esforço: falha de publicação não derruba a operação
// que a originou, só registra no log.
func (p *Publisher) Publish(ctx context.Context, ev ChangeEvent) {
	if p == nil || p.rdb == nil {
		return
	}

	b, err := json.Marshal(ev)
	if err != nil {
		log.Println("realtime marshal error:", err)
		return
	}

	if err := p.rdb.Publish(ctx, ChannelFinancialRecords, b).Err(); err != nil {
		log.Println("realtime publish error:", err)
	}
}

func (p *Publisher) Subscribe(ctx context.Context) *redis.PubSub {
	return p.rdb.Subscribe(ctx, ChannelFinancialRecords)
}
