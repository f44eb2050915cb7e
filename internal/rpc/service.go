package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "calendar.v1.CalendarService"

// CalendarServer is the server contract registered against ServiceDesc.
type CalendarServer interface {
	ListDoctors(ctx context.Context, req *ListDoctorsRequest) (*ListDoctorsResponse, error)
	GetDoctor(ctx context.Context, req *GetDoctorRequest) (*GetDoctorResponse, error)
	GetDaySchedule(ctx context.Context, req *ScheduleRequest) (*ScheduleResponse, error)
	GetWeekSchedule(ctx context.Context, req *ScheduleRequest) (*ScheduleResponse, error)
}

// ServiceDesc wires the methods by hand; the server must be built with
// grpc.ForceServerCodec(Codec{}) since the messages are not proto.Message.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CalendarServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListDoctors", Handler: listDoctorsHandler},
		{MethodName: "GetDoctor", Handler: getDoctorHandler},
		{MethodName: "GetDaySchedule", Handler: getDayScheduleHandler},
		{MethodName: "GetWeekSchedule", Handler: getWeekScheduleHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func listDoctorsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListDoctorsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServer).ListDoctors(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/ListDoctors"}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(CalendarServer).ListDoctors(ctx, req.(*ListDoctorsRequest))
	})
}

func getDoctorHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetDoctorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServer).GetDoctor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetDoctor"}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(CalendarServer).GetDoctor(ctx, req.(*GetDoctorRequest))
	})
}

func getDayScheduleHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServer).GetDaySchedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetDaySchedule"}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(CalendarServer).GetDaySchedule(ctx, req.(*ScheduleRequest))
	})
}

func getWeekScheduleHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServer).GetWeekSchedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetWeekSchedule"}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(CalendarServer).GetWeekSchedule(ctx, req.(*ScheduleRequest))
	})
}
