package helpers

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/MichalMitros/commerce-seeder/internal/platform/storage/storagetesting"
	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const runTimeout = time.Minute

// WaitForRunToBeFinished is blocking helper function, returns latest run of target newer than afterRunID after it is finished.
func WaitForRunToBeFinished(t *testing.T, queryable qrm.Queryable, targetURL string, afterRunID int) *models.Run {
	t.Helper()

	deadline := time.After(runTimeout)

	var targetID int
	for targetID == 0 {
		select {
		case <-deadline:
			require.FailNow(t, "target wasn't created", targetURL)
		case <-time.After(time.Millisecond * 250):
		}
		targetID = storagetesting.GetTargetID(t, queryable, targetURL)
	}

	for {
		select {
		case <-deadline:
			require.FailNow(t, "run wasn't finished", targetURL)
		case <-time.After(time.Millisecond * 500):
		}
		latestRun := storagetesting.GetLatestRun(t, queryable, targetID)
		if latestRun != nil && latestRun.ID > afterRunID && latestRun.FinishedAt != nil {
			return latestRun
		}
	}
}

// DeleteRMQQueue is helper function for deleting RMQ queue after test is finished.
func DeleteRMQQueue(t *testing.T, channel *amqp.Channel, queueName string) {
	t.Helper()

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// LogMessages is helper function which unmarshals json logs and returns their messages.
func LogMessages(t *testing.T, logs string) []string {
	t.Helper()

	lines := lo.Filter(strings.Split(logs, "\n"), func(line string, _ int) bool { return strings.TrimSpace(line) != "" })

	return lo.Map(lines, func(line string, _ int) string {
		var log struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal([]byte(line), &log); err != nil {
			require.FailNow(t, "can't unmarshal json log", err)
		}

		return log.Message
	})
}
