// Command picoping connects to a Minecraft-compatible server, performs a
// Server List Ping, and prints the status response.
package main

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	ns "github.com/go-mclib/picolimbo/net_structures"
	"github.com/go-mclib/picolimbo/protocol"
	"github.com/go-mclib/picolimbo/protocol/packets"
	"github.com/go-mclib/picolimbo/protocolversion"
	"github.com/go-mclib/picolimbo/registry"
)

func main() {
	cmd := pingCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func pingCmd() *cobra.Command {
	var versionFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "picoping <address>",
		Short: "Ping a Minecraft Java Edition server and print its status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := protocolversion.Newest
			if versionFlag != "" {
				n, err := strconv.Atoi(versionFlag)
				if err != nil {
					return fmt.Errorf("invalid --version %q: %w", versionFlag, err)
				}
				version = protocolversion.From(int32(n))
			}
			return ping(args[0], version, asJSON)
		},
	}
	cmd.Flags().StringVar(&versionFlag, "version", "", "protocol version number to claim (default: newest supported)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw status JSON instead of a formatted summary")
	return cmd
}

func ping(address string, version protocolversion.ProtocolVersion, asJSON bool) error {
	hostname, port, err := splitHostPort(address)
	if err != nil {
		return err
	}

	conn, err := net.Dial("tcp", net.JoinHostPort(hostname, strconv.Itoa(int(port))))
	if err != nil {
		return fmt.Errorf("connect to %s: %w", address, err)
	}
	defer conn.Close()

	if err := sendHandshake(conn, version, hostname, port); err != nil {
		return err
	}
	if err := sendStatusRequest(conn, version); err != nil {
		return err
	}

	payload, err := readStatusResponse(conn, version)
	if err != nil {
		return err
	}

	var status packets.StatusResponsePayload
	if err := json.Unmarshal([]byte(payload), &status); err != nil {
		return fmt.Errorf("parse status response: %w", err)
	}

	if asJSON {
		fmt.Println(payload)
		return nil
	}

	fmt.Printf("Version: %s (protocol %d)\n", status.Version.Name, status.Version.Protocol)
	fmt.Printf("Players: %d/%d\n", status.Players.Online, status.Players.Max)
	return nil
}

func sendHandshake(conn net.Conn, version protocolversion.ProtocolVersion, hostname string, port uint16) error {
	hs := packets.Handshake{
		ProtocolVersion: ns.VarInt(version),
		Hostname:        ns.String(hostname),
		Port:            ns.UnsignedShort(port),
		NextState:       packets.IntentStatus,
	}
	body, err := protocol.Marshal(hs, protocolversion.Any)
	if err != nil {
		return fmt.Errorf("marshal handshake: %w", err)
	}
	return protocol.WriteFrame(conn, 0x00, body)
}

func sendStatusRequest(conn net.Conn, version protocolversion.ProtocolVersion) error {
	body, err := protocol.Marshal(packets.StatusRequest{}, version)
	if err != nil {
		return fmt.Errorf("marshal status request: %w", err)
	}
	id, err := registry.IDOf(version, protocol.StateStatus, protocol.ServerBound, "status_request")
	if err != nil {
		return err
	}
	return protocol.WriteFrame(conn, id, body)
}

func readStatusResponse(conn net.Conn, version protocolversion.ProtocolVersion) (string, error) {
	frame, err := protocol.ReadFrame(conn)
	if err != nil {
		return "", fmt.Errorf("read status response: %w", err)
	}
	name, err := registry.NameOf(version, protocol.StateStatus, protocol.ClientBound, frame.ID)
	if err != nil {
		return "", err
	}
	if name != "status_response" {
		return "", fmt.Errorf("unexpected packet %q in reply to status request", name)
	}
	var resp packets.StatusResponse
	if err := protocol.Unmarshal(ns.ByteArray(frame.Payload), &resp, version); err != nil {
		return "", fmt.Errorf("decode status response: %w", err)
	}
	return string(resp.JSON), nil
}

func splitHostPort(address string) (string, uint16, error) {
	if !strings.Contains(address, ":") {
		return address, 25565, nil
	}
	host, portStr, err := net.SplitHostPort(address)
	if err != nil {
		return "", 0, fmt.Errorf("invalid address %q: %w", address, err)
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port in %q: %w", address, err)
	}
	return host, uint16(port), nil
}
