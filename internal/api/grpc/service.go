package grpc

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/ghinsights/internal/api/view"
	"github.com/m-zajac/ghinsights/internal/app"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// AppService provides github insights.
type AppService interface {
	ProfileSummary(ctx context.Context, token string, username string) (*app.ProfileSummary, error)
	CommitTrend(ctx context.Context, token string, username string) (*app.CommitTrend, error)
	RepositoryTimeline(ctx context.Context, token string, owner string, name string) ([]app.TimelinePoint, error)
	RepositoryDetails(ctx context.Context, token string, owner string, name string) (json.RawMessage, error)
}

// Service implements ServiceServer definition, acting as a direct proxy to AppService.
// Token is read from "authorization" metadata.
type Service struct {
	appService AppService
}

var _ ServiceServer = &Service{}

// NewService returns new Service instance.
func NewService(appService AppService) *Service {
	return &Service{
		appService: appService,
	}
}

// ProfileSummary expects {"username"} request.
func (s *Service) ProfileSummary(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	summary, err := s.appService.ProfileSummary(ctx, token(ctx), stringField(r, "username"))
	if err != nil {
		return nil, statusError(errors.Wrap(err, "service.ProfileSummary"))
	}

	return toStruct(view.NewProfile(summary))
}

// CommitTrend expects {"username"} request.
func (s *Service) CommitTrend(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	trend, err := s.appService.CommitTrend(ctx, token(ctx), stringField(r, "username"))
	if err != nil {
		return nil, statusError(errors.Wrap(err, "service.CommitTrend"))
	}

	return toStruct(view.NewCommitTrend(trend))
}

// RepositoryTimeline expects {"owner", "repo"} request.
func (s *Service) RepositoryTimeline(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	points, err := s.appService.RepositoryTimeline(ctx, token(ctx), stringField(r, "owner"), stringField(r, "repo"))
	if err != nil {
		return nil, statusError(errors.Wrap(err, "service.RepositoryTimeline"))
	}

	return toStruct(view.NewTimeline(points))
}

// RepositoryDetails expects {"owner", "repo"} request.
func (s *Service) RepositoryDetails(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	details, err := s.appService.RepositoryDetails(ctx, token(ctx), stringField(r, "owner"), stringField(r, "repo"))
	if err != nil {
		return nil, statusError(errors.Wrap(err, "service.RepositoryDetails"))
	}

	reply := new(structpb.Struct)
	if err := protojson.Unmarshal(details, reply); err != nil {
		return nil, status.Error(codes.Internal, errors.Wrap(err, "decoding repository details").Error())
	}
	return reply, nil
}

func token(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}

	v := strings.TrimSpace(vals[0])
	if len(v) > 7 && strings.EqualFold(v[:7], "bearer ") {
		v = strings.TrimSpace(v[7:])
	}
	return v
}

func stringField(r *structpb.Struct, name string) string {
	if r == nil {
		return ""
	}
	return r.GetFields()[name].GetStringValue()
}

func toStruct(v interface{}) (*structpb.Struct, error) {
	data, err := jsoniter.ConfigFastest.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, errors.Wrap(err, "encoding reply").Error())
	}

	reply := new(structpb.Struct)
	if err := protojson.Unmarshal(data, reply); err != nil {
		return nil, status.Error(codes.Internal, errors.Wrap(err, "converting reply").Error())
	}
	return reply, nil
}

// statusError maps app errors to grpc status codes.
func statusError(err error) error {
	code := codes.Internal

	switch {
	case app.IsUnauthenticatedError(err):
		code = codes.Unauthenticated
	case app.IsInvalidRequestError(err):
		code = codes.InvalidArgument
	case app.IsTooManyRequestsError(err):
		code = codes.ResourceExhausted
	}

	var transportErr *app.TransportError
	if errors.As(err, &transportErr) {
		code = codes.Unavailable
		if transportErr.Timeout() {
			code = codes.DeadlineExceeded
		}
	}
	if apiErr, ok := app.AsUpstreamAPIError(err); ok {
		code = upstreamCode(apiErr)
	}

	return status.Error(code, err.Error())
}

func upstreamCode(err *app.UpstreamAPIError) codes.Code {
	switch {
	case err.Message == "rate limit exceeded" || err.StatusCode == http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case err.StatusCode == http.StatusUnauthorized:
		return codes.Unauthenticated
	case err.StatusCode == http.StatusForbidden:
		return codes.PermissionDenied
	case err.StatusCode == http.StatusNotFound:
		return codes.NotFound
	case err.StatusCode/100 == 4:
		return codes.FailedPrecondition
	default:
		return codes.Unavailable
	}
}
