package pf

// Ruleset is the fixed rule block written to the anchor file: deny by
// default, skip loopback, reassemble fragments before filtering, permit
// the ICMP/ICMPv6 message types diagnostics and path MTU discovery depend
// on, and allow outbound traffic statefully so replies come back.
const Ruleset = `# SecureMacOS pf ruleset
# Managed by securemacos. Do not edit; reinstall to restore.

set block-policy drop
set skip on lo0

scrub in all no-df fragment reassemble

block in all
block out all

# ICMP for diagnostics and path MTU discovery
pass in inet proto icmp icmp-type { echoreq, unreach, timex } keep state
pass in inet6 proto icmp6 icmp6-type { echoreq, neighbrsol, neighbradv, routersol, routeradv, unreach, toobig, timex } keep state

# Stateful outbound
pass out inet all keep state
pass out inet6 all keep state
`
