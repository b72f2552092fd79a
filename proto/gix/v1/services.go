package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RouterServiceClient is the client API for the gix.v1.RouterService.
type RouterServiceClient interface {
	RouteEnvelope(ctx context.Context, in *RouteEnvelopeRequest, opts ...grpc.CallOption) (*RouteEnvelopeResponse, error)
	GetRouterStats(ctx context.Context, in *RouterStatsRequest, opts ...grpc.CallOption) (*RouterStatsResponse, error)
}

type routerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRouterServiceClient returns a RouterServiceClient over cc.
func NewRouterServiceClient(cc grpc.ClientConnInterface) RouterServiceClient {
	return &routerServiceClient{cc}
}

func (c *routerServiceClient) RouteEnvelope(ctx context.Context, in *RouteEnvelopeRequest, opts ...grpc.CallOption) (*RouteEnvelopeResponse, error) {
	out := new(RouteEnvelopeResponse)
	err := c.cc.Invoke(ctx, "/gix.v1.RouterService/RouteEnvelope", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *routerServiceClient) GetRouterStats(ctx context.Context, in *RouterStatsRequest, opts ...grpc.CallOption) (*RouterStatsResponse, error) {
	out := new(RouterStatsResponse)
	err := c.cc.Invoke(ctx, "/gix.v1.RouterService/GetRouterStats", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RouterServiceServer is the server API for the gix.v1.RouterService.
type RouterServiceServer interface {
	RouteEnvelope(context.Context, *RouteEnvelopeRequest) (*RouteEnvelopeResponse, error)
	GetRouterStats(context.Context, *RouterStatsRequest) (*RouterStatsResponse, error)
}

// UnimplementedRouterServiceServer can be embedded for forward compatibility.
type UnimplementedRouterServiceServer struct{}

// RouteEnvelope returns an unimplemented error.
func (*UnimplementedRouterServiceServer) RouteEnvelope(context.Context, *RouteEnvelopeRequest) (*RouteEnvelopeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RouteEnvelope not implemented")
}

// GetRouterStats returns an unimplemented error.
func (*UnimplementedRouterServiceServer) GetRouterStats(context.Context, *RouterStatsRequest) (*RouterStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRouterStats not implemented")
}

// RegisterRouterServiceServer registers srv on s.
func RegisterRouterServiceServer(s grpc.ServiceRegistrar, srv RouterServiceServer) {
	s.RegisterService(&_RouterService_serviceDesc, srv)
}

func _RouterService_RouteEnvelope_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RouteEnvelopeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RouterServiceServer).RouteEnvelope(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/gix.v1.RouterService/RouteEnvelope",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RouterServiceServer).RouteEnvelope(ctx, req.(*RouteEnvelopeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RouterService_GetRouterStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RouterStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RouterServiceServer).GetRouterStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/gix.v1.RouterService/GetRouterStats",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RouterServiceServer).GetRouterStats(ctx, req.(*RouterStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _RouterService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "gix.v1.RouterService",
	HandlerType: (*RouterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RouteEnvelope",
			Handler:    _RouterService_RouteEnvelope_Handler,
		},
		{
			MethodName: "GetRouterStats",
			Handler:    _RouterService_GetRouterStats_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/gix/v1/gix.proto",
}

// AuctionServiceClient is the client API for the gix.v1.AuctionService.
type AuctionServiceClient interface {
	RunAuction(ctx context.Context, in *RunAuctionRequest, opts ...grpc.CallOption) (*RunAuctionResponse, error)
	GetAuctionStats(ctx context.Context, in *AuctionStatsRequest, opts ...grpc.CallOption) (*AuctionStatsResponse, error)
}

type auctionServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAuctionServiceClient returns an AuctionServiceClient over cc.
func NewAuctionServiceClient(cc grpc.ClientConnInterface) AuctionServiceClient {
	return &auctionServiceClient{cc}
}

func (c *auctionServiceClient) RunAuction(ctx context.Context, in *RunAuctionRequest, opts ...grpc.CallOption) (*RunAuctionResponse, error) {
	out := new(RunAuctionResponse)
	err := c.cc.Invoke(ctx, "/gix.v1.AuctionService/RunAuction", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *auctionServiceClient) GetAuctionStats(ctx context.Context, in *AuctionStatsRequest, opts ...grpc.CallOption) (*AuctionStatsResponse, error) {
	out := new(AuctionStatsResponse)
	err := c.cc.Invoke(ctx, "/gix.v1.AuctionService/GetAuctionStats", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AuctionServiceServer is the server API for the gix.v1.AuctionService.
type AuctionServiceServer interface {
	RunAuction(context.Context, *RunAuctionRequest) (*RunAuctionResponse, error)
	GetAuctionStats(context.Context, *AuctionStatsRequest) (*AuctionStatsResponse, error)
}

// UnimplementedAuctionServiceServer can be embedded for forward compatibility.
type UnimplementedAuctionServiceServer struct{}

// RunAuction returns an unimplemented error.
func (*UnimplementedAuctionServiceServer) RunAuction(context.Context, *RunAuctionRequest) (*RunAuctionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunAuction not implemented")
}

// GetAuctionStats returns an unimplemented error.
func (*UnimplementedAuctionServiceServer) GetAuctionStats(context.Context, *AuctionStatsRequest) (*AuctionStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAuctionStats not implemented")
}

// RegisterAuctionServiceServer registers srv on s.
func RegisterAuctionServiceServer(s grpc.ServiceRegistrar, srv AuctionServiceServer) {
	s.RegisterService(&_AuctionService_serviceDesc, srv)
}

func _AuctionService_RunAuction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunAuctionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuctionServiceServer).RunAuction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/gix.v1.AuctionService/RunAuction",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuctionServiceServer).RunAuction(ctx, req.(*RunAuctionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AuctionService_GetAuctionStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AuctionStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuctionServiceServer).GetAuctionStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/gix.v1.AuctionService/GetAuctionStats",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuctionServiceServer).GetAuctionStats(ctx, req.(*AuctionStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _AuctionService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "gix.v1.AuctionService",
	HandlerType: (*AuctionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RunAuction",
			Handler:    _AuctionService_RunAuction_Handler,
		},
		{
			MethodName: "GetAuctionStats",
			Handler:    _AuctionService_GetAuctionStats_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/gix/v1/gix.proto",
}

// ExecutionServiceClient is the client API for the gix.v1.ExecutionService.
type ExecutionServiceClient interface {
	ExecuteJob(ctx context.Context, in *ExecuteJobRequest, opts ...grpc.CallOption) (*ExecuteJobResponse, error)
	GetRuntimeStats(ctx context.Context, in *RuntimeStatsRequest, opts ...grpc.CallOption) (*RuntimeStatsResponse, error)
}

type executionServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewExecutionServiceClient returns an ExecutionServiceClient over cc.
func NewExecutionServiceClient(cc grpc.ClientConnInterface) ExecutionServiceClient {
	return &executionServiceClient{cc}
}

func (c *executionServiceClient) ExecuteJob(ctx context.Context, in *ExecuteJobRequest, opts ...grpc.CallOption) (*ExecuteJobResponse, error) {
	out := new(ExecuteJobResponse)
	err := c.cc.Invoke(ctx, "/gix.v1.ExecutionService/ExecuteJob", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *executionServiceClient) GetRuntimeStats(ctx context.Context, in *RuntimeStatsRequest, opts ...grpc.CallOption) (*RuntimeStatsResponse, error) {
	out := new(RuntimeStatsResponse)
	err := c.cc.Invoke(ctx, "/gix.v1.ExecutionService/GetRuntimeStats", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExecutionServiceServer is the server API for the gix.v1.ExecutionService.
type ExecutionServiceServer interface {
	ExecuteJob(context.Context, *ExecuteJobRequest) (*ExecuteJobResponse, error)
	GetRuntimeStats(context.Context, *RuntimeStatsRequest) (*RuntimeStatsResponse, error)
}

// UnimplementedExecutionServiceServer can be embedded for forward compatibility.
type UnimplementedExecutionServiceServer struct{}

// ExecuteJob returns an unimplemented error.
func (*UnimplementedExecutionServiceServer) ExecuteJob(context.Context, *ExecuteJobRequest) (*ExecuteJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExecuteJob not implemented")
}

// GetRuntimeStats returns an unimplemented error.
func (*UnimplementedExecutionServiceServer) GetRuntimeStats(context.Context, *RuntimeStatsRequest) (*RuntimeStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRuntimeStats not implemented")
}

// RegisterExecutionServiceServer registers srv on s.
func RegisterExecutionServiceServer(s grpc.ServiceRegistrar, srv ExecutionServiceServer) {
	s.RegisterService(&_ExecutionService_serviceDesc, srv)
}

func _ExecutionService_ExecuteJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExecuteJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExecutionServiceServer).ExecuteJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/gix.v1.ExecutionService/ExecuteJob",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExecutionServiceServer).ExecuteJob(ctx, req.(*ExecuteJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExecutionService_GetRuntimeStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RuntimeStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExecutionServiceServer).GetRuntimeStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/gix.v1.ExecutionService/GetRuntimeStats",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExecutionServiceServer).GetRuntimeStats(ctx, req.(*RuntimeStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _ExecutionService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "gix.v1.ExecutionService",
	HandlerType: (*ExecutionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExecuteJob",
			Handler:    _ExecutionService_ExecuteJob_Handler,
		},
		{
			MethodName: "GetRuntimeStats",
			Handler:    _ExecutionService_GetRuntimeStats_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/gix/v1/gix.proto",
}
