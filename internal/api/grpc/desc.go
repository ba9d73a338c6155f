package grpc

import (
	"context"

	grpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is full grpc name of insights service.
const ServiceName = "ghinsights.Insights"

// Method names of insights service.
const (
	MethodProfileSummary     = "ProfileSummary"
	MethodCommitTrend        = "CommitTrend"
	MethodRepositoryTimeline = "RepositoryTimeline"
	MethodRepositoryDetails  = "RepositoryDetails"
)

// ServiceServer is the server API for insights service, declared in insights.proto.
// Requests and replies are google.protobuf.Struct messages.
type ServiceServer interface {
	ProfileSummary(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CommitTrend(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RepositoryTimeline(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RepositoryDetails(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterServiceServer registers srv in grpc server.
func RegisterServiceServer(s grpc.ServiceRegistrar, srv ServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

type unaryCall func(ServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// unaryHandler adapts call to grpc.MethodDesc handler signature.
func unaryHandler(method string, call unaryCall) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ServiceServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(ServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: MethodProfileSummary,
			Handler:    unaryHandler(MethodProfileSummary, ServiceServer.ProfileSummary),
		},
		{
			MethodName: MethodCommitTrend,
			Handler:    unaryHandler(MethodCommitTrend, ServiceServer.CommitTrend),
		},
		{
			MethodName: MethodRepositoryTimeline,
			Handler:    unaryHandler(MethodRepositoryTimeline, ServiceServer.RepositoryTimeline),
		},
		{
			MethodName: MethodRepositoryDetails,
			Handler:    unaryHandler(MethodRepositoryDetails, ServiceServer.RepositoryDetails),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "insights.proto",
}

// FullMethod returns method path used on the wire.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// Client calls insights service.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates new Client instance.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes given method of insights service.
func (c *Client) Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
