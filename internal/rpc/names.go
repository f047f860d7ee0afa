package rpc

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "ephemeralsessions.v1.SessionAPI"

// Unary method names of [ServiceName].
const (
	MethodCreate         = "Create"
	MethodGet            = "Get"
	MethodDelete         = "Delete"
	MethodRefresh        = "Refresh"
	MethodStatus         = "Status"
	MethodTestConnection = "TestConnection"
)

// FullMethod returns the "/service/method" path used on the wire.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}
