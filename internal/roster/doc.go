// Package roster models the privileged assignee group (typically the healer
// team), the raid-lead supervisor, and the policy that decides which
// assignments the raid lead may see.
//
// The roster keeps its configured order, which the stripper relies on for
// deterministic output, while membership checks go through an NFC-normalized
// set so accented names survive differently-composed exports.
package roster
