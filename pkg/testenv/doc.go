/*
Package testenv defines the file conventions of the HALO test environment.

End-to-end tests run real manager and agent processes on one machine, so the
usual host-level facts (is this host powered? is this resource running?) are
modeled as files under a private per-test directory, published to processes
via HALO_TEST_DIRECTORY:

	<dir>/<agent_id>.pid              agent's pid; doubles as "powered on"
	<dir>/<agent_id>.<resource_id>    resource state; exists means running
	$HALO_TEST_LOG                    action log appended by test OCF scripts

The test fence agent "powers off" a host by killing the pid from the pid
file and deleting it; the test OCF scripts create and remove state files on
start/stop and report running status from their existence. Deleting a state
file behind the manager's back simulates a resource dying.

These conventions are shared by the remote agent (pid
advertisement), the scripts under test/testdata, and the test framework,
so they live here rather than being repeated in each.
*/
package testenv
