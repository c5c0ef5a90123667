// Package budget derives the per-event time-noise budget epsilon_t from
// New PK and delta. Higher PK means lower budget means more noise;
// epsilon_t==0 is a sentinel meaning "do not perturb this event's time".
package budget
