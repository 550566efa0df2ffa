package server

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"time"

	"github.com/bastiangx/wordfinder/internal/logger"
	"github.com/bastiangx/wordfinder/internal/utils"
	"github.com/bastiangx/wordfinder/pkg/config"
	"github.com/bastiangx/wordfinder/pkg/finder"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	actionInfo = "info"

	codeBadRequest    = 400
	codeInternalError = 500
)

// Server handles the IPC for grid word lookups
type Server struct {
	finder       finder.IWordFinder
	strategy     finder.Strategy
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(f finder.IWordFinder, strategy finder.Strategy, cfg *config.Config) *Server {
	return NewServerWithIO(f, strategy, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w
func NewServerWithIO(f finder.IWordFinder, strategy finder.Strategy, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		finder:   f,
		strategy: strategy,
		config:   cfg,
		decoder:  msgpack.NewDecoder(r),
		encoder:  msgpack.NewEncoder(w),
		logger:   logger.New("server"),
	}
}

// Start announces readiness and serves requests until the input ends.
func (s *Server) Start() error {
	s.logger.Debug("Starting server", "strategy", s.strategy)
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Reading request: %v", err)
			return fmt.Errorf("reading request: %w", err)
		}
		if err := s.handleRequest(raw); err != nil {
			return err
		}
	}
}

// handleRequest decodes one message and dispatches it. Only write failures are returned.
func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	s.requestCount++

	var request Request
	if err := msgpack.Unmarshal(raw, &request); err != nil {
		s.logger.Debugf("Unmarshaling request: %v", err)
		return s.sendError("", "invalid msgpack request", codeBadRequest)
	}
	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	switch request.Action {
	case "":
		return s.handleFind(request)
	case actionInfo:
		return s.handleInfo(request)
	default:
		return s.sendError(request.ID, fmt.Sprintf("unknown action: %s", request.Action), codeBadRequest)
	}
}

func (s *Server) handleFind(request Request) error {
	if len(request.Queries) > s.config.Server.MaxQueries {
		msg := fmt.Sprintf("query stream of %d words exceeds maximum of %d", len(request.Queries), s.config.Server.MaxQueries)
		return s.sendError(request.ID, msg, codeBadRequest)
	}

	var queries iter.Seq[string]
	if request.Queries != nil {
		queries = slices.Values(request.Queries)
	}

	start := time.Now()
	matches, err := s.finder.FindMatches(queries)
	elapsed := time.Since(start)
	if err != nil {
		code := codeInternalError
		if errors.Is(err, finder.ErrInvalidArgument) {
			code = codeBadRequest
		}
		return s.sendError(request.ID, err.Error(), code)
	}

	s.logger.Debugf("Took [ %v ] for %d queries, %d matches", elapsed, len(request.Queries), len(matches))

	ranks := utils.CreateRankList(len(matches))
	found := make([]FindMatch, len(matches))
	for i, m := range matches {
		found[i] = FindMatch{Word: m.Word, Count: m.Count, Rank: ranks[i]}
	}
	return s.send(FindResponse{
		ID:        request.ID,
		Matches:   found,
		Count:     len(found),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleInfo(request Request) error {
	stats := s.finder.Stats()
	return s.send(InfoResponse{
		ID:            request.ID,
		Status:        "ok",
		Strategy:      string(s.strategy),
		Rows:          stats["rows"],
		Cols:          stats["cols"],
		Words:         stats["words"],
		CaseSensitive: stats["caseSensitive"] == 1,
		Requests:      s.requestCount,
	})
}

func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Writing response: %v", err)
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
