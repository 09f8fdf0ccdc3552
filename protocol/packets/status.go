package packets

import ns "github.com/go-mclib/picolimbo/net_structures"

// StatusRequest carries no fields; receiving it is itself the signal to
// reply with StatusResponse.
type StatusRequest struct{}

func (StatusRequest) Name() string { return "status_request" }

// StatusResponse.JSON is the raw status JSON document, built by the limbo
// package from ServerState (version name/protocol, player counts, MOTD);
// packets itself does not know its shape beyond "a String".
type StatusResponse struct {
	JSON ns.String
}

func (StatusResponse) Name() string { return "status_response" }

// StatusResponsePayload is the Go shape marshaled to JSON to build
// StatusResponse.JSON; it is not itself wire-encoded with ToBytes/FromBytes.
type StatusResponsePayload struct {
	Version struct {
		Name     string `json:"name"`
		Protocol int32  `json:"protocol"`
	} `json:"version"`
	Players struct {
		Max    int `json:"max"`
		Online int `json:"online"`
	} `json:"players"`
	Description        any    `json:"description"`
	Favicon            string `json:"favicon,omitempty"`
	EnforcesSecureChat bool   `json:"enforcesSecureChat,omitempty"`
}

type PingRequest struct {
	Timestamp ns.Long
}

func (PingRequest) Name() string { return "ping_request" }

type PongResponse struct {
	Timestamp ns.Long
}

func (PongResponse) Name() string { return "pong_response" }
