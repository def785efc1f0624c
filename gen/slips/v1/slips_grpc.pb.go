// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: slips/v1/slips.proto

package slipsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SlipsService_ProcessSlip_FullMethodName  = "/slips.v1.SlipsService/ProcessSlip"
	SlipsService_CheckQuality_FullMethodName = "/slips.v1.SlipsService/CheckQuality"
	SlipsService_SubmitSlip_FullMethodName   = "/slips.v1.SlipsService/SubmitSlip"
	SlipsService_ListSlips_FullMethodName    = "/slips.v1.SlipsService/ListSlips"
	SlipsService_ExportSlips_FullMethodName  = "/slips.v1.SlipsService/ExportSlips"
)

// SlipsServiceClient is the client API for SlipsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SlipsService digitizes photographed industrial-waste slips.
type SlipsServiceClient interface {
	// ProcessSlip runs extraction on a capture without recording it.
	ProcessSlip(ctx context.Context, in *ProcessSlipRequest, opts ...grpc.CallOption) (*ProcessSlipResponse, error)
	// CheckQuality scores a capture without calling the vision service.
	CheckQuality(ctx context.Context, in *CheckQualityRequest, opts ...grpc.CallOption) (*CheckQualityResponse, error)
	// SubmitSlip records reviewed fields.
	SubmitSlip(ctx context.Context, in *SubmitSlipRequest, opts ...grpc.CallOption) (*SubmitSlipResponse, error)
	ListSlips(ctx context.Context, in *ListSlipsRequest, opts ...grpc.CallOption) (*ListSlipsResponse, error)
	// ExportSlips renders recorded slips as an XLSX workbook.
	ExportSlips(ctx context.Context, in *ExportSlipsRequest, opts ...grpc.CallOption) (*ExportSlipsResponse, error)
}

type slipsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSlipsServiceClient(cc grpc.ClientConnInterface) SlipsServiceClient {
	return &slipsServiceClient{cc}
}

func (c *slipsServiceClient) ProcessSlip(ctx context.Context, in *ProcessSlipRequest, opts ...grpc.CallOption) (*ProcessSlipResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessSlipResponse)
	err := c.cc.Invoke(ctx, SlipsService_ProcessSlip_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *slipsServiceClient) CheckQuality(ctx context.Context, in *CheckQualityRequest, opts ...grpc.CallOption) (*CheckQualityResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CheckQualityResponse)
	err := c.cc.Invoke(ctx, SlipsService_CheckQuality_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *slipsServiceClient) SubmitSlip(ctx context.Context, in *SubmitSlipRequest, opts ...grpc.CallOption) (*SubmitSlipResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitSlipResponse)
	err := c.cc.Invoke(ctx, SlipsService_SubmitSlip_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *slipsServiceClient) ListSlips(ctx context.Context, in *ListSlipsRequest, opts ...grpc.CallOption) (*ListSlipsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSlipsResponse)
	err := c.cc.Invoke(ctx, SlipsService_ListSlips_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *slipsServiceClient) ExportSlips(ctx context.Context, in *ExportSlipsRequest, opts ...grpc.CallOption) (*ExportSlipsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportSlipsResponse)
	err := c.cc.Invoke(ctx, SlipsService_ExportSlips_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SlipsServiceServer is the server API for SlipsService service.
// All implementations must embed UnimplementedSlipsServiceServer
// for forward compatibility.
//
// SlipsService digitizes photographed industrial-waste slips.
type SlipsServiceServer interface {
	// ProcessSlip runs extraction on a capture without recording it.
	ProcessSlip(context.Context, *ProcessSlipRequest) (*ProcessSlipResponse, error)
	// CheckQuality scores a capture without calling the vision service.
	CheckQuality(context.Context, *CheckQualityRequest) (*CheckQualityResponse, error)
	// SubmitSlip records reviewed fields.
	SubmitSlip(context.Context, *SubmitSlipRequest) (*SubmitSlipResponse, error)
	ListSlips(context.Context, *ListSlipsRequest) (*ListSlipsResponse, error)
	// ExportSlips renders recorded slips as an XLSX workbook.
	ExportSlips(context.Context, *ExportSlipsRequest) (*ExportSlipsResponse, error)
	mustEmbedUnimplementedSlipsServiceServer()
}

// UnimplementedSlipsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSlipsServiceServer struct{}

func (UnimplementedSlipsServiceServer) ProcessSlip(context.Context, *ProcessSlipRequest) (*ProcessSlipResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProcessSlip not implemented")
}
func (UnimplementedSlipsServiceServer) CheckQuality(context.Context, *CheckQualityRequest) (*CheckQualityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckQuality not implemented")
}
func (UnimplementedSlipsServiceServer) SubmitSlip(context.Context, *SubmitSlipRequest) (*SubmitSlipResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitSlip not implemented")
}
func (UnimplementedSlipsServiceServer) ListSlips(context.Context, *ListSlipsRequest) (*ListSlipsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSlips not implemented")
}
func (UnimplementedSlipsServiceServer) ExportSlips(context.Context, *ExportSlipsRequest) (*ExportSlipsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportSlips not implemented")
}
func (UnimplementedSlipsServiceServer) mustEmbedUnimplementedSlipsServiceServer() {}
func (UnimplementedSlipsServiceServer) testEmbeddedByValue()                      {}

// UnsafeSlipsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SlipsServiceServer will
// result in compilation errors.
type UnsafeSlipsServiceServer interface {
	mustEmbedUnimplementedSlipsServiceServer()
}

func RegisterSlipsServiceServer(s grpc.ServiceRegistrar, srv SlipsServiceServer) {
	// If the following call panics, it indicates UnimplementedSlipsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SlipsService_ServiceDesc, srv)
}

func _SlipsService_ProcessSlip_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessSlipRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SlipsServiceServer).ProcessSlip(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SlipsService_ProcessSlip_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SlipsServiceServer).ProcessSlip(ctx, req.(*ProcessSlipRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SlipsService_CheckQuality_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckQualityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SlipsServiceServer).CheckQuality(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SlipsService_CheckQuality_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SlipsServiceServer).CheckQuality(ctx, req.(*CheckQualityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SlipsService_SubmitSlip_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitSlipRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SlipsServiceServer).SubmitSlip(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SlipsService_SubmitSlip_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SlipsServiceServer).SubmitSlip(ctx, req.(*SubmitSlipRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SlipsService_ListSlips_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSlipsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SlipsServiceServer).ListSlips(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SlipsService_ListSlips_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SlipsServiceServer).ListSlips(ctx, req.(*ListSlipsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SlipsService_ExportSlips_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportSlipsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SlipsServiceServer).ExportSlips(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SlipsService_ExportSlips_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SlipsServiceServer).ExportSlips(ctx, req.(*ExportSlipsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SlipsService_ServiceDesc is the grpc.ServiceDesc for SlipsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SlipsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "slips.v1.SlipsService",
	HandlerType: (*SlipsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessSlip",
			Handler:    _SlipsService_ProcessSlip_Handler,
		},
		{
			MethodName: "CheckQuality",
			Handler:    _SlipsService_CheckQuality_Handler,
		},
		{
			MethodName: "SubmitSlip",
			Handler:    _SlipsService_SubmitSlip_Handler,
		},
		{
			MethodName: "ListSlips",
			Handler:    _SlipsService_ListSlips_Handler,
		},
		{
			MethodName: "ExportSlips",
			Handler:    _SlipsService_ExportSlips_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "slips/v1/slips.proto",
}
