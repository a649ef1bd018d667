package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"google.golang.org/grpc"

	"respool"
	"respool/api/grpcserver"
	pb "respool/api/pb"

	"respool/domain/session"
	"respool/infra/journal"
	"respool/infra/kafka"
	"respool/infra/outbox"
	"respool/infra/reclaim"
	"respool/infra/sequence"
	"respool/jobs/broadcaster"
	"respool/service"
)

func main() {
	// ---------------- Journal ----------------

	jrnl, err := journal.Open(journal.Config{
		Dir:         "./journal",
		SegmentSize: 2 * 1024 * 1024,
	})
	if err != nil {
		log.Fatalf("journal init failed: %v", err)
	}

	// ---------------- Outbox ----------------

	box, err := outbox.Open("./outbox")
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer box.Close()

	// ---------------- Sequencer ----------------

	seqGen := sequence.New(0)

	// ---------------- Pool ----------------

	pool := respool.New(respool.Config[session.Session]{})
	ring := reclaim.NewRetireRing(1 << 18)
	reader := reclaim.NewReaderEpoch()

	// ---------------- Service ----------------

	svc := service.NewLeaseService(
		pool,
		seqGen,
		jrnl,
		box,
		ring,
		reader,
	)

	// ---------------- JOURNAL REPLAY ----------------

	if err := svc.ReplayFromJournal("./journal"); err != nil {
		log.Fatalf("journal replay failed: %v", err)
	}

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			svc.AdvanceEpoch()
		}
	}()

	brokers := []string{"localhost:9092"}

	bc, err := broadcaster.New(box, brokers, "lease-events")
	if err != nil {
		log.Printf("[broadcaster] disabled: %v", err)
	} else {
		defer bc.Close()
		bc.Start(ctx)

		stats := kafka.NewProducer(brokers, "pool-stats")
		defer stats.Close()
		svc.StartStatsJob(ctx, stats, 10*time.Second)
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", ":50051")
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterLeaseServiceServer(
		grpcSrv,
		grpcserver.NewServer(svc),
	)

	fmt.Println("🚀 Lease server running on :50051")

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}
