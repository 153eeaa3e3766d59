/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package clock contains time arithmetic and thin syscall wrappers for clocks addressed by clock id.

It works with any clock id accepted by the kernel, such as CLOCK_REALTIME or a dynamic
PHC clock id derived from an open /dev/ptpN file descriptor.

Supported methods include
  - Timestamp and Delta types with nanosecond normalization (0 <= Nsec < 1s)
  - reading the clock through Gettime (clock_gettime)
  - setting the clock to an absolute time through Settime (clock_settime)
  - reading the current frequency through FrequencyPPB, converted to PPB
  - returning maximum frequency adjustment possible for the clock

Adjustments are absolute writes: callers read, add a Delta and write back.
*/
package clock
