// Package protocol implements the binary wire protocol between a live
// document server and its viewers.
//
// Input events flow viewer to server, document patches flow server to
// viewer, both over a WebSocket carrying binary frames. Every message
// starts with a 4-byte header:
//
//	┌─────────────┬──────────────┬───────────────────────────────┐
//	│ Frame Type  │ Flags        │ Payload Length                │
//	│ (1 byte)    │ (1 byte)     │ (2 bytes, big-endian)         │
//	└─────────────┴──────────────┴───────────────────────────────┘
//
// Frame types:
//
//   - FrameHandshake (0x00): connection setup
//   - FrameEvent (0x01): viewer → server input events
//   - FramePatches (0x02): server → viewer document patches
//   - FrameControl (0x03): ping, resync, close
//   - FrameAck (0x04): patch acknowledgment
//   - FrameError (0x05): error message
//
// Payloads use varints for small integers (ZigZag for signed),
// varint-length-prefixed strings, and big-endian fixed-width integers.
// Events address tree nodes by binding token ("{id}/{event-attribute}");
// patches address them by child-index path from the document root, so
// viewers need no identifier table to apply them.
package protocol
