package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// argParser parses and validates the command and its arguments
func argParser(input string) (map[string]interface{}, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil, fmt.Errorf("no command entered")
	}

	command := strings.ToUpper(parts[0])
	request := map[string]interface{}{
		"command": command,
	}

	switch command {
	case "PING":
		// PING requires no additional arguments
		if len(parts) > 1 {
			return nil, fmt.Errorf("PING does not require any arguments")
		}

	case "ECHO":
		// ECHO requires a message
		if len(parts) < 2 {
			return nil, fmt.Errorf("ECHO requires a message")
		}
		request["message"] = strings.Join(parts[1:], " ")

	case "LPUSH", "RPUSH", "PUSH", "SPUSH":
		if len(parts) < 3 {
			return nil, fmt.Errorf("%s requires a key and value", command)
		}
		request["key"] = parts[1]
		request["value"] = strings.Join(parts[2:], " ")

	case "LPOP", "RPOP", "LLEN", "LRANGE", "SPOP", "SPEEK", "SLEN", "DEL":
		if len(parts) != 2 {
			return nil, fmt.Errorf("%s requires a key", command)
		}
		request["key"] = parts[1]

	case "LINDEX", "LDEL", "SGET":
		if len(parts) != 3 {
			return nil, fmt.Errorf("%s requires a key and index", command)
		}
		index, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("index must be an integer")
		}
		request["key"] = parts[1]
		request["index"] = index

	case "LINSERT":
		if len(parts) < 4 {
			return nil, fmt.Errorf("LINSERT requires a key, index and value")
		}
		index, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("index must be an integer")
		}
		request["key"] = parts[1]
		request["index"] = index
		request["value"] = strings.Join(parts[3:], " ")

	default:
		// Unknown command
		return nil, fmt.Errorf("unknown command: %s", command)
	}

	return request, nil
}

func main() {
	addr := flag.String("addr", "localhost:6380", "Address of the list server")
	flag.Parse()

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		fmt.Println("Error connecting to server:", err)
		return
	}
	defer conn.Close()

	fmt.Println("Connected to server. Type commands (e.g., RPUSH key value, LINDEX key 0, LPOP key) and press Enter.")
	reader := bufio.NewReader(os.Stdin)
	encoder := msgpack.NewEncoder(conn)
	decoder := msgpack.NewDecoder(conn)

	for {
		fmt.Print(">> ")
		// Read user input
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("Error reading input:", err)
			return
		}
		input = strings.TrimSpace(input)

		// Parse and validate the input
		request, err := argParser(input)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}

		// Send the serialized request to the server
		if err := encoder.Encode(request); err != nil {
			fmt.Println("Error sending to server:", err)
			return
		}

		// Read the server's response
		var serverResponse map[string]interface{}
		if err := decoder.Decode(&serverResponse); err != nil {
			fmt.Println("Error reading from server:", err)
			return
		}

		// Print the server's response
		status, _ := serverResponse["status"].(string)
		switch status {
		case "OK":
			if message, ok := serverResponse["message"].(string); ok {
				fmt.Println("Server:", message)
			} else if value, ok := serverResponse["value"]; ok {
				fmt.Println("Server:", value)
			} else {
				fmt.Println("Server: OK")
			}
		case "ERROR":
			fmt.Println("Server Error:", serverResponse["message"])
		default:
			fmt.Println("Server:", status)
		}
	}
}
