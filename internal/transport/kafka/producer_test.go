package kafka

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"

	"courier-chat/internal/frontend"
)

type fakeSender struct {
	sent []*sarama.ProducerMessage
	err  error
}

func (f *fakeSender) SendMessage(msg *sarama.ProducerMessage) (int32, int64, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	f.sent = append(f.sent, msg)
	return 0, 0, nil
}

func (f *fakeSender) Close() error { return nil }

func TestProducer_Publish(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	p := &Producer{sender: sender, topic: "renders"}

	err := p.Publish(42, []frontend.Render{frontend.ShowMenu{Text: "ок"}})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	require.Equal(t, "renders", msg.Topic)

	key, err := msg.Key.Encode()
	require.NoError(t, err)
	require.Equal(t, "42", string(key))

	value, err := msg.Value.Encode()
	require.NoError(t, err)

	var out RendersMessage
	require.NoError(t, json.Unmarshal(value, &out))
	require.Equal(t, int64(42), out.SessionID)
	require.Len(t, out.Renders, 1)
	require.Equal(t, "menu", out.Renders[0].Type)
	require.Equal(t, "ок", out.Renders[0].Text)
}

func TestProducer_Publish_SendError(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{err: errors.New("broker down")}
	p := &Producer{sender: sender, topic: "renders"}

	err := p.Publish(42, nil)
	require.Error(t, err)
}

func TestProducer_NilIsNoop(t *testing.T) {
	t.Parallel()

	var p *Producer
	require.NoError(t, p.Publish(42, []frontend.Render{frontend.ShowMenu{}}))
	require.NoError(t, p.Close())
}

func TestNewProducer_UnconfiguredReturnsNil(t *testing.T) {
	t.Parallel()

	p, err := NewProducer(nil, "renders")
	require.NoError(t, err)
	require.Nil(t, p)

	p, err = NewProducer([]string{"b:9092"}, " ")
	require.NoError(t, err)
	require.Nil(t, p)
}
