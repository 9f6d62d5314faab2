package logsink

import (
	"strconv"
	"testing"
	"time"

	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/models"
	"github.com/stretchr/testify/require"
)

func TestAppendKeepsOrder(t *testing.T) {
	s := New(logging.Nop())

	s.Info("Начало расчёта траектории...")
	s.Success("Робот успешно сконфигурирован")
	s.Error("Ошибка: timeout")
	s.Info("Начало расчёта траектории...")

	entries := s.Entries()
	require.Len(t, entries, 4)
	require.Equal(t, models.LogSuccess, entries[1].Kind)
	require.Equal(t, models.LogError, entries[2].Kind)
	require.Equal(t, entries[0].Message, entries[3].Message)
	require.False(t, entries[0].Timestamp.IsZero())
}

func TestEntriesReturnsCopy(t *testing.T) {
	s := New(logging.Nop())
	s.Info("one")

	entries := s.Entries()
	entries[0].Message = "changed"

	require.Equal(t, "one", s.Entries()[0].Message)
}

func TestClear(t *testing.T) {
	s := New(logging.Nop())
	s.Info("one")
	s.Clear()

	require.Empty(t, s.Entries())
}

func TestSubscribe(t *testing.T) {
	s := New(logging.Nop())
	ch, cancel := s.Subscribe()

	s.Success("done")

	select {
	case e := <-ch:
		require.Equal(t, "done", e.Message)
	case <-time.After(time.Second):
		t.Fatal("запись не доставлена подписчику")
	}

	cancel()
	cancel()
	_, ok := <-ch
	require.False(t, ok)

	s.Info("after cancel")
	require.Len(t, s.Entries(), 2)
}

func TestSubscribeWithBacklogSplitsEntries(t *testing.T) {
	s := New(logging.Nop())
	s.Info("0")

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 1; ; i++ {
			select {
			case <-stop:
				return
			default:
				s.Info(strconv.Itoa(i))
			}
		}
	}()

	backlog, ch, cancel := s.SubscribeWithBacklog()
	close(stop)
	<-done
	cancel()

	require.NotEmpty(t, backlog)
	require.Equal(t, "0", backlog[0].Message)
	last, err := strconv.Atoi(backlog[len(backlog)-1].Message)
	require.NoError(t, err)
	for e := range ch {
		n, err := strconv.Atoi(e.Message)
		require.NoError(t, err)
		require.Greater(t, n, last)
	}
}
