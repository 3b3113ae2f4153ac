package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "pokidex.v1.AssistantService"

// Full method names
const (
	AskFullMethod      = "/" + ServiceName + "/Ask"
	IdentifyFullMethod = "/" + ServiceName + "/Identify"
)

// AssistantServer is the server API for the assistant service.
// Messages are well known wrapper types so no generated code is needed.
type AssistantServer interface {
	// Ask answers one question
	Ask(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	// Identify names the pokemon in an image
	Identify(ctx context.Context, req *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
}

// ServiceDesc describes the assistant service for grpc.Server registration
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AssistantServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ask", Handler: askHandler},
		{MethodName: "Identify", Handler: identifyHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pokidex/v1/assistant.proto",
}

// RegisterAssistantServer registers srv with the gRPC server
func RegisterAssistantServer(s grpc.ServiceRegistrar, srv AssistantServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func askHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssistantServer).Ask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AskFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AssistantServer).Ask(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func identifyHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssistantServer).Identify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: IdentifyFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AssistantServer).Identify(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

// AssistantClient is the client API for the assistant service
type AssistantClient interface {
	Ask(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Identify(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type assistantClient struct {
	cc grpc.ClientConnInterface
}

// NewAssistantClient creates a client over an existing connection
func NewAssistantClient(cc grpc.ClientConnInterface) AssistantClient {
	return &assistantClient{cc: cc}
}

func (c *assistantClient) Ask(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, AskFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assistantClient) Identify(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, IdentifyFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
