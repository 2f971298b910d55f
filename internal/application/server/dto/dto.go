package dto

import "github.com/vpndash/vpndash/internal/domain/server"

type ServerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Country   string `json:"country"`
	IP        string `json:"ip"`
	Load      int    `json:"load"`
	Protocol  string `json:"protocol"`
	Ping      int    `json:"ping"`
	Status    string `json:"status"`
	NotesHTML string `json:"notesHtml,omitempty"`
}

func ToServerResponse(s server.Server) ServerResponse {
	return ServerResponse{
		ID:        s.ID,
		Name:      s.Name,
		Location:  s.Location,
		Country:   s.Country,
		IP:        s.IP,
		Load:      s.Load,
		Protocol:  s.Protocol,
		Ping:      s.Ping,
		Status:    string(s.Status),
		NotesHTML: s.NotesHTML,
	}
}

func ToServerResponses(servers []server.Server) []ServerResponse {
	out := make([]ServerResponse, 0, len(servers))
	for _, s := range servers {
		out = append(out, ToServerResponse(s))
	}
	return out
}
