package commander_test

import (
	"context"
	"testing"

	"github.com/MichalMitros/commerce-seeder/pkg/v1/commander"
	"github.com/MichalMitros/commerce-seeder/pkg/v1/commander/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitSendSeedCommand(t *testing.T) {
	tests := map[string]struct {
		cmd         commander.SeedCommand
		body        string
		senderError error
		wantErr     error
	}{
		"default catalog": {
			cmd:  commander.SeedCommand{},
			body: `{"force":false,"rollback":false}`,
		},
		"catalog file with options": {
			cmd:  commander.SeedCommand{CatalogFile: "/etc/seeder/catalog.yaml", Force: true, Rollback: true},
			body: `{"catalogFile":"/etc/seeder/catalog.yaml","force":true,"rollback":true}`,
		},
		"sender error": {
			cmd:         commander.SeedCommand{Rollback: true},
			body:        `{"force":false,"rollback":true}`,
			senderError: assert.AnError,
			wantErr:     assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sender := mocks.NewSender(t)
			sender.On("Send", mock.Anything, []byte(tt.body)).Return(tt.senderError)

			cmndr := commander.NewSeedCommander(sender)
			err := cmndr.SendSeedCommand(context.TODO(), tt.cmd)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}
