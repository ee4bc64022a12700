package bind_group_provider

// BufferWrite describes a single GPU buffer write operation targeting a specific binding
// on a BindGroupProvider at a given byte offset.
//
// The scene collects one BufferWrite per dirty resource each tick (frame uniform,
// light uniform, model matrices) and submits the batch through Renderer.WriteBuffers
// so uploads land on the queue together before the frame's draw calls.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}
