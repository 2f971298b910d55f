package dto

import (
	"time"

	"github.com/vpndash/vpndash/internal/domain/connection"
)

type StartSessionResponse struct {
	ConnectionID string    `json:"connectionId"`
	Status       string    `json:"status"`
	StartTime    time.Time `json:"startTime"`
}

func ToStartSessionResponse(c *connection.Connection) *StartSessionResponse {
	return &StartSessionResponse{
		ConnectionID: c.SID(),
		Status:       c.Status().String(),
		StartTime:    c.StartTime(),
	}
}

type StopSessionResponse struct {
	Status   string    `json:"status"`
	EndTime  time.Time `json:"endTime"`
	Duration int64     `json:"duration"`
	DataUsed float64   `json:"dataUsed"` // GB
}

func ToStopSessionResponse(c *connection.Connection) *StopSessionResponse {
	resp := &StopSessionResponse{
		Status:   c.Status().String(),
		Duration: c.Duration(),
		DataUsed: c.DataUsed(),
	}
	if end := c.EndTime(); end != nil {
		resp.EndTime = *end
	}
	return resp
}

// StatusResponse omits every field but isConnected when there is no open session.
type StatusResponse struct {
	IsConnected    bool     `json:"isConnected"`
	ConnectionID   string   `json:"connectionId,omitempty"`
	ServerID       string   `json:"serverId,omitempty"`
	ConnectionTime *int64   `json:"connectionTime,omitempty"`
	DataUsed       *float64 `json:"dataUsed,omitempty"`
}

type ConnectionLogResponse struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	ServerLocation string    `json:"serverLocation"`
	IPAddress      string    `json:"ipAddress"`
	DataUsed       float64   `json:"dataUsed"` // MB
	Duration       int64     `json:"duration"`
	Status         string    `json:"status"`
}

func ToConnectionLogResponses(logs []*connection.Log) []ConnectionLogResponse {
	out := make([]ConnectionLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, ConnectionLogResponse{
			ID:             l.SID(),
			Timestamp:      l.Timestamp(),
			ServerLocation: l.ServerLocation(),
			IPAddress:      l.IPAddress(),
			DataUsed:       l.DataUsed(),
			Duration:       l.Duration(),
			Status:         string(l.Status()),
		})
	}
	return out
}

type ConnectionStatsResponse struct {
	TotalConnections int64   `json:"totalConnections"`
	SuccessRate      float64 `json:"successRate"`
	AverageDuration  int64   `json:"averageDuration"`
}

func ToConnectionStatsResponse(s connection.Summary) ConnectionStatsResponse {
	return ConnectionStatsResponse{
		TotalConnections: s.TotalConnections,
		SuccessRate:      s.SuccessRate,
		AverageDuration:  s.AverageDuration,
	}
}
