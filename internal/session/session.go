// Package session delivers desktop session-state changes as typed events:
// screen lock (triggers a full resync) and session logout (triggers
// shutdown). The transport is D-Bus; the rest of the daemon only sees the
// event types.
package session

import (
	"context"
	"log/slog"

	"github.com/godbus/dbus/v5"
)

// ScreenLockedChanged reports the screen saver's Active property changing.
type ScreenLockedChanged struct {
	Locked bool
}

// SessionActiveChanged reports the login session's Active property
// changing. Active=false means the user logged out.
type SessionActiveChanged struct {
	Active bool
}

const (
	loginPath  = dbus.ObjectPath("/org/freedesktop/login1/session/auto")
	loginIface = "org.freedesktop.login1.Session"

	screenSaverPath  = dbus.ObjectPath("/org/freedesktop/ScreenSaver")
	screenSaverIface = "org.freedesktop.ScreenSaver"

	propsChangedSignal = "org.freedesktop.DBus.Properties.PropertiesChanged"

	// signalChanSize buffers raw D-Bus signals between the bus reader and
	// the forwarding loop.
	signalChanSize = 16
)

// Notifier subscribes to PropertiesChanged on the login1 session (system
// bus) and the screen saver (session bus) and forwards typed events.
type Notifier struct {
	logger *slog.Logger
}

func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger}
}

// Run subscribes and forwards events until the context is cancelled. A
// failed subscription is logged and that source is dropped; the daemon
// keeps running on whatever remains, degraded but available.
func (n *Notifier) Run(ctx context.Context, out chan<- any) error {
	signals := make(chan *dbus.Signal, signalChanSize)

	if conn := n.subscribe(dbus.ConnectSystemBus, loginPath, "logout"); conn != nil {
		defer conn.Close()
		conn.Signal(signals)
	}

	if conn := n.subscribe(dbus.ConnectSessionBus, screenSaverPath, "screen lock"); conn != nil {
		defer conn.Close()
		conn.Signal(signals)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case sig, ok := <-signals:
			if !ok {
				return nil
			}

			ev, ok := translate(sig)
			if !ok {
				continue
			}

			select {
			case out <- ev:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// subscribe connects to a bus and installs a PropertiesChanged match rule
// for the given object path. Returns nil when either step fails; the
// failure only costs that notification source.
func (n *Notifier) subscribe(connect func(...dbus.ConnOption) (*dbus.Conn, error), path dbus.ObjectPath, source string) *dbus.Conn {
	conn, err := connect()
	if err != nil {
		n.logger.Error("session notifications degraded: bus connection failed",
			slog.String("source", source),
			slog.String("error", err.Error()),
		)

		return nil
	}

	err = conn.AddMatchSignal(
		dbus.WithMatchInterface("org.freedesktop.DBus.Properties"),
		dbus.WithMatchMember("PropertiesChanged"),
		dbus.WithMatchObjectPath(path),
	)
	if err != nil {
		n.logger.Error("session notifications degraded: subscription failed",
			slog.String("source", source),
			slog.String("error", err.Error()),
		)
		conn.Close()

		return nil
	}

	n.logger.Debug("subscribed to session notifications", slog.String("source", source))

	return conn
}

// translate decodes a PropertiesChanged signal into a typed event. The
// signal body is (interface string, changed map[string]variant,
// invalidated []string); only changes to the Active property matter.
func translate(sig *dbus.Signal) (any, bool) {
	if sig == nil || sig.Name != propsChangedSignal || len(sig.Body) < 2 {
		return nil, false
	}

	iface, ok := sig.Body[0].(string)
	if !ok {
		return nil, false
	}

	changed, ok := sig.Body[1].(map[string]dbus.Variant)
	if !ok {
		return nil, false
	}

	variant, ok := changed["Active"]
	if !ok {
		return nil, false
	}

	active, ok := variant.Value().(bool)
	if !ok {
		return nil, false
	}

	switch iface {
	case loginIface:
		return SessionActiveChanged{Active: active}, true
	case screenSaverIface:
		return ScreenLockedChanged{Locked: active}, true
	}

	return nil, false
}
