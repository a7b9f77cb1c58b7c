package api

import (
	"encoding/json"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-math/angle"
	"github.com/a-bouts/nav-math/api/model"
	"github.com/a-bouts/nav-math/azimuth"
	"github.com/a-bouts/nav-math/distance"
	"github.com/a-bouts/nav-math/interp"
	"github.com/a-bouts/nav-math/latlon"
	"github.com/a-bouts/nav-math/root"
)

type server struct {
	cpuprofile bool
	// pkg/profile allows a single active profile
	profiling sync.Mutex
}

func InitServer(cpuprofile bool) *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	s := &server{cpuprofile: cpuprofile}

	router.HandleFunc("/math/-/healthz", s.healthz).Methods(http.MethodGet)

	apiV1 := router.PathPrefix("/math/api/v1").Subrouter()
	apiV1.HandleFunc("/angle/distance/{a1}/{a2}", s.angularDistance).Methods(http.MethodGet)
	apiV1.HandleFunc("/angle/haversin/{a}", s.haversin).Methods(http.MethodGet)
	apiV1.HandleFunc("/azimuth/{az}", s.azimuth).Methods(http.MethodGet)
	apiV1.HandleFunc("/azimuth/{az}/math", s.toMath).Methods(http.MethodGet)
	apiV1.HandleFunc("/azimuth/{az}/compass", s.fromMath).Methods(http.MethodGet)
	apiV1.HandleFunc("/azimuth/{az}/octant", s.octant).Methods(http.MethodGet)
	apiV1.HandleFunc("/distance/meters/{m}", s.toRad).Methods(http.MethodGet)
	apiV1.HandleFunc("/distance/radians/{r}", s.toMeter).Methods(http.MethodGet)
	apiV1.HandleFunc("/interp/bilerp", s.bilerp).Methods(http.MethodPost)
	apiV1.HandleFunc("/latlon/bearing", s.bearing).Methods(http.MethodPost)
	apiV1.HandleFunc("/latlon/crossing", s.crossing).Methods(http.MethodPost)

	return router
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	json.NewEncoder(w).Encode(health{Status: "Ok"})
}

func floatVar(r *http.Request, name string) (float64, error) {
	v, err := strconv.ParseFloat(mux.Vars(r)[name], 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parameter '%s'", name)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("parameter '%s' is not finite", name)
	}
	return v, nil
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch errors.Cause(err) {
	case azimuth.ErrNotCanonical:
		status = http.StatusUnprocessableEntity
	case root.ErrNoBracket:
		status = http.StatusNotFound
	}

	log.Debugf("%d %s", status, err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.Error{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (s *server) angularDistance(w http.ResponseWriter, r *http.Request) {
	a1, err := floatVar(r, "a1")
	if err != nil {
		writeError(w, err)
		return
	}
	a2, err := floatVar(r, "a2")
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, model.AngularDistance{Distance: angle.AngularDistance(a1, a2)})
}

func (s *server) haversin(w http.ResponseWriter, r *http.Request) {
	a, err := floatVar(r, "a")
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, model.Value{Value: angle.Haversin(a)})
}

func (s *server) azimuth(w http.ResponseWriter, r *http.Request) {
	az, err := floatVar(r, "az")
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, model.Azimuth{
		Azimuth:       az,
		Canonical:     azimuth.IsCanonical(az),
		Canonicalized: azimuth.Canonicalize(az),
	})
}

func (s *server) convert(w http.ResponseWriter, r *http.Request, f func(float64) (float64, error)) {
	az, err := floatVar(r, "az")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := f(az)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, model.Azimuth{Azimuth: res, Canonical: true, Canonicalized: res})
}

func (s *server) toMath(w http.ResponseWriter, r *http.Request) {
	s.convert(w, r, azimuth.ToMath)
}

func (s *server) fromMath(w http.ResponseWriter, r *http.Request) {
	s.convert(w, r, azimuth.FromMath)
}

func token(r *http.Request, name string, def string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return def
}

func (s *server) octant(w http.ResponseWriter, r *http.Request) {
	az, err := floatVar(r, "az")
	if err != nil {
		writeError(w, err)
		return
	}

	label, err := azimuth.ToOctantStr(az, token(r, "n", "N"), token(r, "e", "E"), token(r, "s", "S"), token(r, "w", "W"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, model.Octant{Octant: label})
}

func (s *server) toRad(w http.ResponseWriter, r *http.Request) {
	m, err := floatVar(r, "m")
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, model.Distance{Meters: m, Radians: distance.ToRad(m)})
}

func (s *server) toMeter(w http.ResponseWriter, r *http.Request) {
	rad, err := floatVar(r, "r")
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, model.Distance{Meters: distance.ToMeter(rad), Radians: rad})
}

func (s *server) bilerp(w http.ResponseWriter, req *http.Request) {
	var b model.Bilerp
	if err := json.NewDecoder(req.Body).Decode(&b); err != nil {
		writeError(w, errors.Wrap(err, "decode bilerp request"))
		return
	}

	writeJSON(w, model.Value{Value: interp.Bilerp(b.Z00, b.Z10, b.Z01, b.Z11, b.X, b.Y)})
}

func (s *server) bearing(w http.ResponseWriter, req *http.Request) {
	var b model.Bearing
	if err := json.NewDecoder(req.Body).Decode(&b); err != nil {
		writeError(w, errors.Wrap(err, "decode bearing request"))
		return
	}

	d, brg := latlon.DistanceAndBearingTo(b.From, b.To)

	// brg is in [0, 360) so its radians are canonical
	o, err := azimuth.ToOctant(azimuth.Canonicalize(angle.ToRadians(brg)))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, model.BearingResult{Distance: d, Bearing: brg, Octant: o.String()})
}

func (s *server) crossing(w http.ResponseWriter, req *http.Request) {
	if s.cpuprofile {
		s.profiling.Lock()
		defer s.profiling.Unlock()
		defer profile.Start().Stop()
	}

	fields := log.Fields{
		"action": "crossing",
	}
	if ip, err := getIp(req); err == nil {
		fields["IP"] = ip
	}
	requestLogger := log.WithFields(fields)

	var c model.Crossing
	if err := json.NewDecoder(req.Body).Decode(&c); err != nil {
		writeError(w, errors.Wrap(err, "decode crossing request"))
		return
	}
	if !(-90 <= c.Lat && c.Lat <= 90) {
		writeError(w, errors.Errorf("latitude %f is not in [-90, 90]", c.Lat))
		return
	}

	requestLogger.Infof("Crossing latitude '%.4f' from (%.4f, %.4f) on '%.1f'", c.Lat, c.From.Lat, c.From.Lon, c.Bearing)

	start := time.Now()

	d, err := latlon.LatitudeCrossing(c.From, c.Bearing, c.Lat)
	if err != nil {
		requestLogger.Infof("Crossing not found: %s", err)
		writeError(w, err)
		return
	}

	requestLogger.Debugf("Crossing took %s", time.Since(start).String())

	writeJSON(w, model.CrossingResult{Distance: d, Position: latlon.Destination(c.From, c.Bearing, d)})
}

// getIp returns the client address, preferring the proxy headers.
func getIp(r *http.Request) (string, error) {
	if ip := strings.TrimSpace(r.Header.Get("X-REAL-IP")); net.ParseIP(ip) != nil {
		return ip, nil
	}

	for _, ip := range strings.Split(r.Header.Get("X-FORWARDED-FOR"), ",") {
		if ip = strings.TrimSpace(ip); net.ParseIP(ip) != nil {
			return ip, nil
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", errors.Wrapf(err, "remote address '%s'", r.RemoteAddr)
	}
	if net.ParseIP(ip) == nil {
		return "", errors.Errorf("no valid ip in '%s'", r.RemoteAddr)
	}
	return ip, nil
}
