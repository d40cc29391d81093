// Package metric provides Prometheus metrics for iotlab-cli.
//
// A CLI run is short-lived, so metrics are not served over HTTP. When
// --metrics-file is set they are dumped once at exit in the textfile
// format understood by the node_exporter textfile collector.
package metric
