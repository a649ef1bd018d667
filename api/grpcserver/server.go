package grpcserver

import (
	"context"
	"log"

	"respool"
	pb "respool/api/pb"
	"respool/domain/session"
	"respool/service"
)

type Server struct {
	pb.UnimplementedLeaseServiceServer
	svc *service.LeaseService
}

func NewServer(svc *service.LeaseService) *Server {
	return &Server{svc: svc}
}

func (s *Server) OpenLease(ctx context.Context, req *pb.OpenLeaseRequest) (*pb.OpenLeaseResponse, error) {
	leaseID, h, err := s.svc.Open(req.UserId)
	if err != nil {
		return nil, err
	}
	log.Printf("[gRPC] Opened lease: lease_id=%d user_id=%d handle=%d", leaseID, req.UserId, h)

	return &pb.OpenLeaseResponse{Status: "ok", LeaseId: leaseID, Handle: uint64(h)}, nil
}

func (s *Server) ReleaseLease(ctx context.Context, req *pb.ReleaseLeaseRequest) (*pb.ReleaseLeaseResponse, error) {
	if err := s.svc.Release(req.LeaseId); err != nil {
		return nil, err
	}
	log.Printf("[gRPC] Released lease: lease_id=%d", req.LeaseId)
	return &pb.ReleaseLeaseResponse{Status: "ok"}, nil
}

func (s *Server) TouchLease(ctx context.Context, req *pb.TouchLeaseRequest) (*pb.TouchLeaseResponse, error) {
	touches, err := s.svc.Touch(req.LeaseId)
	if err != nil {
		return nil, err
	}
	return &pb.TouchLeaseResponse{Status: "ok", Touches: touches}, nil
}

func (s *Server) GetSession(ctx context.Context, req *pb.GetSessionRequest) (*pb.GetSessionResponse, error) {
	sess, ok := s.svc.Resolve(respool.Handle[session.Session](req.Handle))
	if !ok {
		return &pb.GetSessionResponse{Status: "not_found"}, nil
	}
	return &pb.GetSessionResponse{
		Status: "ok",
		Session: &pb.SessionView{
			LeaseId:     sess.LeaseID,
			UserId:      sess.UserID,
			State:       sess.State.String(),
			OpenedNanos: sess.OpenedNanos,
			Touches:     sess.Touches,
		},
	}, nil
}

func (s *Server) Describe(ctx context.Context, req *pb.DescribeRequest) (*pb.DescribeResponse, error) {
	st, active := s.svc.Describe()
	return &pb.DescribeResponse{
		LocalCaches:      st.LocalCaches,
		FreeChunks:       st.FreeChunks,
		Groups:           st.Groups,
		Blocks:           st.Blocks,
		Items:            st.Items,
		FreeItems:        st.FreeItems,
		BlockItemCap:     st.BlockItemCap,
		FreeChunkItemCap: int64(st.FreeChunkItemCap),
		TotalBytes:       st.TotalBytes,
		ActiveLeases:     uint64(active),
	}, nil
}
