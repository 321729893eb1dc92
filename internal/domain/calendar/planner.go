package calendar

import (
	"strings"
)

type Action string

const (
	ActionBlock           Action = "block"
	ActionUnblock         Action = "unblock"
	ActionShowReservation Action = "show_reservation"
)

type BlockRequest struct {
	ListingID string
	Date      Date
	Block     bool
}

type Plan struct {
	Action      Action
	Request     *BlockRequest
	Reservation *Reservation
}

func (p Plan) RequiresMutation() bool {
	return p.Request != nil
}

// PlanToggle decides what a tap on a day does. Reserved days are read-only.
func PlanToggle(res Resolution) Plan {
	switch res.Status {
	case StatusReserved:
		return Plan{Action: ActionShowReservation, Reservation: res.Reservation}
	case StatusBlocked:
		return Plan{
			Action:  ActionUnblock,
			Request: &BlockRequest{ListingID: res.ListingID, Date: res.Date, Block: false},
		}
	default:
		return Plan{
			Action:  ActionBlock,
			Request: &BlockRequest{ListingID: res.ListingID, Date: res.Date, Block: true},
		}
	}
}

type ChannelSyncResult struct {
	ChannelKey  ChannelKey
	ChannelName string
	Success     bool
	Error       string
}

func (r ChannelSyncResult) DisplayName() string {
	if r.ChannelName != "" {
		return r.ChannelName
	}
	return string(r.ChannelKey)
}

type SyncOutcome string

const (
	OutcomeUpdated        SyncOutcome = "updated"
	OutcomeSynced         SyncOutcome = "synced"
	OutcomePartialFailure SyncOutcome = "partial_failure"
	OutcomeFailed         SyncOutcome = "failed"
)

type ChannelFailure struct {
	Channel string
	Error   string
}

type SyncReport struct {
	Outcome        SyncOutcome
	Message        string
	SyncedChannels []string
	FailedChannels []ChannelFailure
}

// Applied is false only when the mutation itself never reached the backend.
func (r SyncReport) Applied() bool {
	return r.Outcome != OutcomeFailed
}

func (r SyncReport) FullSuccess() bool {
	return r.Outcome == OutcomeUpdated || r.Outcome == OutcomeSynced
}

func SummarizeSync(results []ChannelSyncResult) SyncReport {
	if len(results) == 0 {
		return SyncReport{Outcome: OutcomeUpdated, Message: "Calendar updated"}
	}

	report := SyncReport{}
	for _, r := range results {
		if r.Success {
			report.SyncedChannels = append(report.SyncedChannels, r.DisplayName())
			continue
		}
		report.FailedChannels = append(report.FailedChannels, ChannelFailure{Channel: r.DisplayName(), Error: r.Error})
	}

	if len(report.FailedChannels) == 0 {
		report.Outcome = OutcomeSynced
		report.Message = "Calendar synced to " + strings.Join(report.SyncedChannels, ", ")
		return report
	}

	failed := make([]string, len(report.FailedChannels))
	for i, f := range report.FailedChannels {
		failed[i] = f.Channel
	}
	report.Outcome = OutcomePartialFailure
	report.Message = "Calendar updated, but sync failed for " + strings.Join(failed, ", ")
	return report
}

func FailureReport() SyncReport {
	return SyncReport{Outcome: OutcomeFailed, Message: "Failed to update calendar"}
}
