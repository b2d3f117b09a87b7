package platform

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strings"
	"time"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// ErrNotRunning indicates no instance is listening for commands.
var ErrNotRunning = errors.New("no running instance")

// InstanceGuard holds the single-instance lock. The lock is a listener on a
// deterministic localhost port, which also carries commands from later
// invocations, one line per connection.
type InstanceGuard struct {
	listener net.Listener
	address  string
}

// CommandHandler runs a command received from another invocation.
type CommandHandler func(ctx context.Context, name string) error

// AcquireSingleInstance attempts to bind a deterministic localhost port.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := instanceAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &InstanceGuard{listener: listener, address: address}, nil
}

// Serve accepts commands until ctx is done or the guard is released.
func (guard *InstanceGuard) Serve(ctx context.Context, handle CommandHandler) error {
	go func() {
		<-ctx.Done()
		_ = guard.listener.Close()
	}()

	for {
		conn, err := guard.listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept command: %w", err)
		}
		go serveCommand(ctx, conn, handle)
	}
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

// SendCommand delivers a command to the running instance of appName.
func SendCommand(ctx context.Context, appName, name string) error {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", instanceAddress(appName))
	if err != nil {
		return ErrNotRunning
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	if _, err := fmt.Fprintln(conn, name); err != nil {
		return fmt.Errorf("send command: %w", err)
	}

	reply, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return fmt.Errorf("read reply: %w", err)
	}
	reply = strings.TrimSpace(reply)
	if reply != "ok" {
		return fmt.Errorf("command %q: %s", name, strings.TrimPrefix(reply, "error: "))
	}
	return nil
}

func serveCommand(ctx context.Context, conn net.Conn, handle CommandHandler) {
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(time.Minute))

	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return
	}
	if err := handle(ctx, strings.TrimSpace(line)); err != nil {
		_, _ = fmt.Fprintf(conn, "error: %v\n", err)
		return
	}
	_, _ = fmt.Fprintln(conn, "ok")
}

func instanceAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
}

func portFromName(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
