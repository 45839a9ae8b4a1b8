package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// SeedCommander sends seed commands.
type SeedCommander struct {
	sender Sender
}

// NewSeedCommander returns new SeedCommander using provided sender for sending messages.
func NewSeedCommander(sender Sender) SeedCommander {
	return SeedCommander{
		sender: sender,
	}
}

// SendSeedCommand sends seed command.
func (c SeedCommander) SendSeedCommand(ctx context.Context, cmd SeedCommand) error {
	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal seed command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
