package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chrsmk/meeple-market/pkg/models"
	"github.com/stretchr/testify/assert"
)

type fakeSQS struct {
	lastBody string
	err      error
}

func (f *fakeSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastBody = *params.MessageBody
	return &sqs.SendMessageOutput{}, nil
}

func TestSQSPublisher(t *testing.T) {
	event := Event{
		Type:      EventBidPlaced,
		AuctionId: "auction1",
		BidId:     "bid1",
		BidderId:  "bidder1",
		Amount:    models.MustMoney("26.00"),
		BidCount:  3,
	}

	t.Run("Success", func(t *testing.T) {
		client := &fakeSQS{}
		publisher := NewSQSPublisher(client, "https://sqs.test/queue")

		err := publisher.Publish(context.Background(), event)

		assert.NoError(t, err)

		var decoded Event
		assert.NoError(t, json.Unmarshal([]byte(client.lastBody), &decoded))
		assert.Equal(t, EventBidPlaced, decoded.Type)
		assert.Equal(t, "auction1", decoded.AuctionId)
		assert.Equal(t, 0, decoded.Amount.Cmp(event.Amount))
	})

	t.Run("Send Fails", func(t *testing.T) {
		client := &fakeSQS{err: errors.New("queue unavailable")}
		publisher := NewSQSPublisher(client, "https://sqs.test/queue")

		err := publisher.Publish(context.Background(), event)

		assert.Error(t, err)
	})
}
