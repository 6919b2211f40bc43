package host

import "github.com/hydra-emu/core/pkg/hc"

// GetInputsSync resolves the requested inputs and returns one value per
// request, in request order. The call is synchronous from the core's
// perspective: in self-driven mode it blocks the core's loop thread until
// the values are produced. A host with no input provider reports every
// input as zero.
func (h *Host) GetInputsSync(requests []*hc.InputRequest) ([]int64, hc.Result) {
	if len(requests) == 0 {
		return nil, hc.ResultErrNullDataPassed
	}

	values := make([]int64, len(requests))
	for i, req := range requests {
		if req == nil {
			return nil, hc.ResultErrNullDataPassed
		}
		if res := hc.Expect(req, hc.StructureTypeInputRequest); !res.Ok() {
			return nil, res
		}
		if !req.Input.Valid() || req.Port >= h.cfg.InputPorts {
			return nil, hc.ResultErrBadInputRequest
		}
		if h.cfg.Input != nil {
			values[i] = h.cfg.Input(req.Port, req.Input)
		}
	}
	return values, hc.ResultSuccess
}
