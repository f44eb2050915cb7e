package grpcweb

import (
	"encoding/binary"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"clinic-calendar-api/internal/handler"
	"clinic-calendar-api/internal/rpc"
)

// Bridge translates gRPC-Web (browser HTTP/1.1) → native gRPC via TCP.
type Bridge struct {
	conn   *grpc.ClientConn
	direct *handler.Handler
	log    *zap.Logger
}

// New dials the gRPC server at addr (e.g. "localhost:50051").
// If directHandler is provided, it bypasses network for known methods.
func New(addr string, directHandler *handler.Handler, log *zap.Logger) (*Bridge, error) {
	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("grpcweb dial: %w", err)
	}
	return &Bridge{conn: conn, direct: directHandler, log: log}, nil
}

func (b *Bridge) Close() { b.conn.Close() }

// Handler returns an http.Handler that translates gRPC-Web → gRPC.
func (b *Bridge) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, X-Grpc-Web, X-User-Agent, x-grpc-web")
		w.Header().Set("Access-Control-Expose-Headers",
			"Grpc-Status, Grpc-Message, Grpc-Status-Details-Bin, grpc-status, grpc-message")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ct := r.Header.Get("Content-Type")
		if !strings.HasPrefix(ct, "application/grpc-web") {
			http.Error(w, "not grpc-web", http.StatusUnsupportedMediaType)
			return
		}

		b.log.Debug("grpc-web request", zap.String("path", r.URL.Path))
		b.forward(w, r)
	})
}

func (b *Bridge) forward(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, codes.Internal, "read body failed")
		return
	}
	if len(body) < 5 {
		writeError(w, codes.InvalidArgument, "body too short")
		return
	}

	// grpc-web frame: 1-byte flag + 4-byte big-endian length + protobuf
	msgLen := binary.BigEndian.Uint32(body[1:5])
	if int(msgLen)+5 > len(body) {
		writeError(w, codes.InvalidArgument, "incomplete frame")
		return
	}
	payload := body[5 : 5+msgLen]

	// BYPASS: handle calendar methods in-process when possible
	if b.direct != nil {
		if done := b.dispatch(w, r, payload); done {
			return
		}
	}

	// invoke gRPC method using raw codec (pass-through bytes)
	resp := &rawMsg{}
	err = b.conn.Invoke(r.Context(), r.URL.Path, &rawMsg{data: payload}, resp, grpc.ForceCodec(rawCodec{}))
	if err != nil {
		st, _ := status.FromError(err)
		b.log.Warn("grpc-web forward failed",
			zap.String("path", r.URL.Path), zap.String("code", st.Code().String()))
		writeError(w, st.Code(), st.Message())
		return
	}

	writeSuccess(w, resp.data)
}

// dispatch decodes the frame for a known method, calls the handler
// directly, and writes the response frames. Returns false for unknown
// methods so forward can fall back to the TCP path.
func (b *Bridge) dispatch(w http.ResponseWriter, r *http.Request, payload []byte) bool {
	ctx := r.Context()
	codec := rpc.Codec{}

	var resp any
	var err error
	switch {
	case strings.HasSuffix(r.URL.Path, "/ListDoctors"):
		req := &rpc.ListDoctorsRequest{}
		if err := codec.Unmarshal(payload, req); err != nil {
			writeError(w, codes.InvalidArgument, "parse error")
			return true
		}
		resp, err = b.direct.ListDoctors(ctx, req)
	case strings.HasSuffix(r.URL.Path, "/GetDoctor"):
		req := &rpc.GetDoctorRequest{}
		if err := codec.Unmarshal(payload, req); err != nil {
			writeError(w, codes.InvalidArgument, "parse error")
			return true
		}
		resp, err = b.direct.GetDoctor(ctx, req)
	case strings.HasSuffix(r.URL.Path, "/GetDaySchedule"):
		req := &rpc.ScheduleRequest{}
		if err := codec.Unmarshal(payload, req); err != nil {
			writeError(w, codes.InvalidArgument, "parse error")
			return true
		}
		resp, err = b.direct.GetDaySchedule(ctx, req)
	case strings.HasSuffix(r.URL.Path, "/GetWeekSchedule"):
		req := &rpc.ScheduleRequest{}
		if err := codec.Unmarshal(payload, req); err != nil {
			writeError(w, codes.InvalidArgument, "parse error")
			return true
		}
		resp, err = b.direct.GetWeekSchedule(ctx, req)
	default:
		return false
	}

	if err != nil {
		st, _ := status.FromError(err)
		writeError(w, st.Code(), st.Message())
		return true
	}
	out, err := codec.Marshal(resp)
	if err != nil {
		writeError(w, codes.Internal, "encode error")
		return true
	}
	writeSuccess(w, out)
	return true
}

// rawMsg wraps raw protobuf bytes.
type rawMsg struct{ data []byte }

// rawCodec passes bytes through without marshal/unmarshal.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) {
	return v.(*rawMsg).data, nil
}
func (rawCodec) Unmarshal(data []byte, v any) error {
	m := v.(*rawMsg)
	m.data = append([]byte(nil), data...)
	return nil
}
func (rawCodec) Name() string { return "raw" }

func writeError(w http.ResponseWriter, code codes.Code, msg string) {
	w.Header().Set("Content-Type", "application/grpc-web+proto")
	w.WriteHeader(http.StatusOK)
	trailer := fmt.Sprintf("grpc-status:%d\r\ngrpc-message:%s\r\n", code, msg)
	tf := make([]byte, 5+len(trailer))
	tf[0] = 0x80
	binary.BigEndian.PutUint32(tf[1:5], uint32(len(trailer)))
	copy(tf[5:], trailer)
	w.Write(tf)
}

func writeSuccess(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/grpc-web+proto")
	w.WriteHeader(http.StatusOK)
	// data frame
	df := make([]byte, 5+len(data))
	df[0] = 0x00
	binary.BigEndian.PutUint32(df[1:5], uint32(len(data)))
	copy(df[5:], data)
	w.Write(df)
	// trailer frame
	trailer := "grpc-status:0\r\n"
	tf := make([]byte, 5+len(trailer))
	tf[0] = 0x80
	binary.BigEndian.PutUint32(tf[1:5], uint32(len(trailer)))
	copy(tf[5:], trailer)
	w.Write(tf)
}
