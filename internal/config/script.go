package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// StepAction names one cashier action in a checkout script
type StepAction string

const (
	ActionStart    StepAction = "start"
	ActionItem     StepAction = "item"
	ActionDiscount StepAction = "discount"
	ActionEnd      StepAction = "end"
	ActionPay      StepAction = "pay"
	ActionChange   StepAction = "change"
)

// ScriptStep is one scripted cashier action. Only the fields relevant to
// the action are read.
type ScriptStep struct {
	Action     StepAction `mapstructure:"action"`
	ItemID     int        `mapstructure:"item_id"`
	Quantity   int        `mapstructure:"quantity"`
	CustomerID int        `mapstructure:"customer_id"`
	Amount     string     `mapstructure:"amount"`
}

// Script is an ordered list of cashier actions run against the register
type Script struct {
	Steps []ScriptStep `mapstructure:"steps"`
}

// DefaultScript replays a typical checkout, including an unknown item, a
// simulated catalog outage and invalid quantities.
func DefaultScript() *Script {
	return &Script{Steps: []ScriptStep{
		{Action: ActionStart},
		{Action: ActionItem, ItemID: 101, Quantity: 2},
		{Action: ActionItem, ItemID: 102, Quantity: 1},
		{Action: ActionItem, ItemID: 999, Quantity: 1},
		{Action: ActionItem, ItemID: 666, Quantity: 1},
		{Action: ActionItem, ItemID: 102, Quantity: 0},
		{Action: ActionItem, ItemID: 101, Quantity: -1},
		{Action: ActionDiscount, CustomerID: 1234},
		{Action: ActionDiscount, CustomerID: 5678},
		{Action: ActionEnd},
		{Action: ActionPay, Amount: "50.00"},
		{Action: ActionChange},
	}}
}

// LoadScript reads a checkout script from a YAML (or JSON/TOML) file
func LoadScript(path string) (*Script, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read checkout script: %w", err)
	}

	var script Script
	if err := v.Unmarshal(&script); err != nil {
		return nil, fmt.Errorf("failed to decode checkout script: %w", err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

// Validate checks that every step names a known action and that payment
// steps carry an amount
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("checkout script has no steps")
	}
	for i, step := range s.Steps {
		switch step.Action {
		case ActionStart, ActionItem, ActionDiscount, ActionEnd, ActionChange:
		case ActionPay:
			if step.Amount == "" {
				return fmt.Errorf("step %d: pay requires an amount", i+1)
			}
		default:
			return fmt.Errorf("step %d: unknown action %q", i+1, step.Action)
		}
	}
	return nil
}
