package web

import (
	"encoding/json"
	"github.com/gorilla/mux"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"net/http"
	"rectq/common"
	ownIo "rectq/io"
	"rectq/search"
	"rectq/solving"
)

// maxRequestBodySize limits the point list of one request.
const maxRequestBodySize = 1 << 20

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type RectangleResponse struct {
	Area    int             `json:"area"`
	Found   bool            `json:"found"`
	Corners [2]common.Point `json:"corners"`
}

type SolveResponse struct {
	Points        int               `json:"points"`
	RegionCells   int               `json:"region-cells"`
	Unconstrained RectangleResponse `json:"unconstrained"`
	Constrained   RectangleResponse `json:"constrained"`
}

func StartServer(port string, workers int) {
	r := initRouter(workers)
	sigolo.Infof("Start server without TLS support on port %s", port)
	err := http.ListenAndServe(":"+port, r)
	sigolo.FatalCheck(err)
}

func StartServerTls(port string, certFile string, keyFile string, workers int) {
	r := initRouter(workers)
	sigolo.Infof("Start server with TLS support on port %s", port)
	err := http.ListenAndServeTLS(":"+port, certFile, keyFile, r)
	sigolo.FatalCheck(err)
}

func initRouter(workers int) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/solve", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Access-Control-Allow-Origin", "*")

		solution, ok := solveRequest(writer, request, workers)
		if !ok {
			return
		}

		response := SolveResponse{
			Points:        len(solution.Points),
			RegionCells:   solution.Region.Count(),
			Unconstrained: toRectangleResponse(solution.Unconstrained),
			Constrained:   toRectangleResponse(solution.Constrained),
		}

		writer.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(writer).Encode(response)
		if err != nil {
			sigolo.Errorf("Error writing solve response: %+v", err)
		}
	}).Methods(http.MethodPost)

	r.HandleFunc("/region", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Access-Control-Allow-Origin", "*")

		solution, ok := solveRequest(writer, request, workers)
		if !ok {
			return
		}

		rectangles := []ownIo.RectangleOutput{
			{Result: solution.Unconstrained, Constrained: false},
			{Result: solution.Constrained, Constrained: true},
		}

		writer.Header().Set("Content-Type", "application/geo+json")
		err := ownIo.WriteResultAsGeoJson(solution.Points, solution.Region, rectangles, writer)
		if err != nil {
			sigolo.Errorf("Error writing region result: %+v", err)
		}
	}).Methods(http.MethodPost)

	return r
}

// solveRequest parses the points from the request body and solves them. When this fails, an error response has
// already been written and false is returned.
func solveRequest(writer http.ResponseWriter, request *http.Request, workers int) (*solving.Solution, bool) {
	body := http.MaxBytesReader(writer, request.Body, maxRequestBodySize)
	points, err := ownIo.ParsePoints(body)
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		sigolo.Errorf("Request body exceeds %d bytes", maxBytesErr.Limit)
		writeErrorResponse(writer, http.StatusRequestEntityTooLarge, "Request body too large.", err)
		return nil, false
	}
	if err != nil {
		sigolo.Errorf("Error parsing points: %+v", err)
		writeErrorResponse(writer, http.StatusBadRequest, "Error parsing points.", err)
		return nil, false
	}

	sigolo.Infof("Solve request with %d points", len(points))

	solution, err := solving.Solve(points, workers)
	if err != nil {
		sigolo.Errorf("Error solving: %+v", err)
		writeErrorResponse(writer, http.StatusBadRequest, "Error solving.", err)
		return nil, false
	}

	return solution, true
}

func toRectangleResponse(result search.Result) RectangleResponse {
	return RectangleResponse{
		Area:    result.Area,
		Found:   result.Found,
		Corners: result.Corners,
	}
}

func writeErrorResponse(writer http.ResponseWriter, status int, message string, err error) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	response := ErrorResponse{Error: message}
	if err != nil {
		response.Details = err.Error()
	}

	errorResponseBytes, err := json.Marshal(response)
	if err != nil {
		sigolo.Errorf("Error creating and marshalling error response object: %+v", err)
		return
	}

	_, err = writer.Write(errorResponseBytes)
	if err != nil {
		sigolo.Errorf("Error writing error response: %+v", err)
	}
}
