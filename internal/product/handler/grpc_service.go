package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// The pricing service exchanges google.protobuf.Struct messages, so it is registered
// with a hand-written descriptor instead of generated stubs.

const PricingServiceName = "coffee.pricing.v1.PricingService"

const (
	MethodGetProductPrice     = "/" + PricingServiceName + "/GetProductPrice"
	MethodGetOptionPrice      = "/" + PricingServiceName + "/GetOptionPrice"
	MethodGetDefaultSelection = "/" + PricingServiceName + "/GetDefaultSelection"
	MethodQuoteSelection      = "/" + PricingServiceName + "/QuoteSelection"
)

type PricingServiceServer interface {
	GetProductPrice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetOptionPrice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDefaultSelection(context.Context, *structpb.Struct) (*structpb.Struct, error)
	QuoteSelection(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterPricingServiceServer(s grpc.ServiceRegistrar, srv PricingServiceServer) {
	s.RegisterService(&PricingServiceDesc, srv)
}

type structMethod func(PricingServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call structMethod) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PricingServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(PricingServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var PricingServiceDesc = grpc.ServiceDesc{
	ServiceName: PricingServiceName,
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetProductPrice",
			Handler:    unaryHandler(MethodGetProductPrice, PricingServiceServer.GetProductPrice),
		},
		{
			MethodName: "GetOptionPrice",
			Handler:    unaryHandler(MethodGetOptionPrice, PricingServiceServer.GetOptionPrice),
		},
		{
			MethodName: "GetDefaultSelection",
			Handler:    unaryHandler(MethodGetDefaultSelection, PricingServiceServer.GetDefaultSelection),
		},
		{
			MethodName: "QuoteSelection",
			Handler:    unaryHandler(MethodQuoteSelection, PricingServiceServer.QuoteSelection),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "coffee/pricing/v1/pricing.proto",
}
