package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"

	"parcel-marketplace/internal/domain"
)

func matchedEvent() domain.DeliveryEvent {
	return domain.DeliveryEvent{
		ID:         "ev-1",
		DeliveryID: "d-1",
		From:       domain.StatusPosted,
		To:         domain.StatusMatched,
		ActorID:    "carrier-1",
		OccurredAt: time.Date(2026, 3, 2, 8, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)),
	}
}

func TestNewProducer_SkipsWhenNotConfigured(t *testing.T) {
	t.Parallel()

	p, err := NewProducer(nil, "delivery-events")
	require.NoError(t, err)
	require.Nil(t, p)

	p, err = NewProducer([]string{"localhost:9092"}, "  ")
	require.NoError(t, err)
	require.Nil(t, p)

	require.NoError(t, p.Close())
}

func TestPublish_SendsJSON(t *testing.T) {
	t.Parallel()

	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var dto EventDTO
		if err := json.Unmarshal(val, &dto); err != nil {
			return err
		}
		if dto.DeliveryID != "d-1" || dto.From != "posted" || dto.To != "matched" || dto.EventID != "ev-1" {
			return errors.New("unexpected payload " + string(val))
		}
		if dto.OccurredAt.Location() != time.UTC {
			return errors.New("occurred_at must be UTC")
		}
		return nil
	})

	p := NewProducerFrom(sp, "delivery-events")
	require.NoError(t, p.Publish(context.Background(), matchedEvent()))
	require.NoError(t, p.Close())
}

func TestPublish_BrokerError(t *testing.T) {
	t.Parallel()

	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewProducerFrom(sp, "delivery-events")
	err := p.Publish(context.Background(), matchedEvent())
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	var perm PermanentError
	require.False(t, errors.As(err, &perm))
	require.NoError(t, p.Close())
}

func TestPublish_InvalidEventIsPermanent(t *testing.T) {
	t.Parallel()

	sp := mocks.NewSyncProducer(t, nil)
	p := NewProducerFrom(sp, "delivery-events")

	ev := matchedEvent()
	ev.DeliveryID = ""
	err := p.Publish(context.Background(), ev)

	var perm PermanentError
	require.ErrorAs(t, err, &perm)
	require.Equal(t, ev.ID, perm.EventID)
	require.Contains(t, err.Error(), "rejected")
	require.NoError(t, p.Close())
}

func TestPublish_CancelledContext(t *testing.T) {
	t.Parallel()

	sp := mocks.NewSyncProducer(t, nil)
	p := NewProducerFrom(sp, "delivery-events")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, p.Publish(ctx, matchedEvent()), context.Canceled)
	require.NoError(t, p.Close())
}

func TestMessage_KeyedByDelivery(t *testing.T) {
	t.Parallel()

	p := NewProducerFrom(nil, "delivery-events")
	msg, err := p.message(matchedEvent())
	require.NoError(t, err)

	require.Equal(t, "delivery-events", msg.Topic)
	key, err := msg.Key.Encode()
	require.NoError(t, err)
	require.Equal(t, "d-1", string(key))
	require.Len(t, msg.Headers, 1)
	require.Equal(t, "delivery.matched", string(msg.Headers[0].Value))
}
