package interfaces

import "context"

//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/event_publisher_interface_mock.go -package=mock_interfaces

// IEventPublisher publishes estimate lifecycle events.
type IEventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}
